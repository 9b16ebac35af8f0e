package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/goswiftlint/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	got := fsutil.BackupPath("/path/to/file.swift")
	if got != "/path/to/file.swift.goswiftlint.bak" {
		t.Errorf("BackupPath() = %q", got)
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("creates backup for existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		content := []byte("hello world")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		created, err := fsutil.CreateBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if !created {
			t.Error("expected created = true")
		}

		got, err := os.ReadFile(fsutil.BackupPath(path))
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("backup content = %q, want %q", got, content)
		}
	})

	t.Run("does not overwrite existing backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		backupContent := []byte("existing backup")

		if err := os.WriteFile(path, []byte("original content"), 0644); err != nil {
			t.Fatalf("setup original: %v", err)
		}
		if err := os.WriteFile(fsutil.BackupPath(path), backupContent, 0644); err != nil {
			t.Fatalf("setup backup: %v", err)
		}

		created, err := fsutil.CreateBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("expected created = false for existing backup")
		}

		got, err := os.ReadFile(fsutil.BackupPath(path))
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != string(backupContent) {
			t.Errorf("backup content = %q, want %q", got, backupContent)
		}
	})

	t.Run("returns false for non-existent file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nonexistent.txt")

		created, err := fsutil.CreateBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("expected created = false for non-existent file")
		}
	})

	t.Run("preserves file mode in backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")

		if err := os.WriteFile(path, []byte("content"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if _, err := fsutil.CreateBackup(context.Background(), path); err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}

		stat, err := os.Stat(fsutil.BackupPath(path))
		if err != nil {
			t.Fatalf("stat backup: %v", err)
		}
		if stat.Mode().Perm() != 0600 {
			t.Errorf("backup mode = %o, want %o", stat.Mode().Perm(), 0600)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")

		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.CreateBackup(ctx, path); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()

	t.Run("restores from backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		backupContent := []byte("backup content")

		if err := os.WriteFile(path, []byte("current content"), 0644); err != nil {
			t.Fatalf("setup current: %v", err)
		}
		if err := os.WriteFile(fsutil.BackupPath(path), backupContent, 0644); err != nil {
			t.Fatalf("setup backup: %v", err)
		}

		restored, err := fsutil.RestoreBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("RestoreBackup() error = %v", err)
		}
		if !restored {
			t.Error("expected restored = true")
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(got) != string(backupContent) {
			t.Errorf("content = %q, want %q", got, backupContent)
		}
	})

	t.Run("returns false when no backup exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")

		restored, err := fsutil.RestoreBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("RestoreBackup() error = %v", err)
		}
		if restored {
			t.Error("expected restored = false when no backup exists")
		}
	})
}

func TestRemoveBackup(t *testing.T) {
	t.Parallel()

	t.Run("removes existing backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "test.txt")
		backupPath := fsutil.BackupPath(path)

		if err := os.WriteFile(backupPath, []byte("backup"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		removed, err := fsutil.RemoveBackup(path)
		if err != nil {
			t.Fatalf("RemoveBackup() error = %v", err)
		}
		if !removed {
			t.Error("expected removed = true")
		}
		if _, err := os.Stat(backupPath); !os.IsNotExist(err) {
			t.Error("backup should not exist after removal")
		}
	})

	t.Run("returns false when no backup exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nonexistent.txt")

		removed, err := fsutil.RemoveBackup(path)
		if err != nil {
			t.Fatalf("RemoveBackup() error = %v", err)
		}
		if removed {
			t.Error("expected removed = false when no backup exists")
		}
	})
}

func TestBackupExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")

	if fsutil.BackupExists(path) {
		t.Error("expected BackupExists = false before creation")
	}

	if err := os.WriteFile(fsutil.BackupPath(path), []byte("backup"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fsutil.BackupExists(path) {
		t.Error("expected BackupExists = true")
	}
}

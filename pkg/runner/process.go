package runner

import (
	"context"
	"fmt"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/goswiftlint/pkg/config"
	"github.com/yaklabco/goswiftlint/pkg/fsutil"
)

// processFile runs the per-file pipeline: read, correct (when fixing),
// write back, then lint the final text. Fixes are written atomically and
// only when the file has not been modified under us since the read.
func (r *Runner) processFile(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	if enry.IsBinary(content) {
		outcome.Skipped = true
		outcome.SkipReason = "binary content"
		return outcome
	}
	if enry.IsGenerated(path, content) {
		outcome.Skipped = true
		outcome.SkipReason = "generated file"
		return outcome
	}

	fixing := cfg != nil && cfg.Fix

	if fixing {
		correction, err := r.Engine.CorrectFile(ctx, path, content, cfg)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Correction = correction

		if correction.Changed() && !cfg.DryRun {
			if err := r.writeBack(ctx, path, info, correction.Content); err != nil {
				outcome.Error = err
				return outcome
			}
			outcome.Written = true
		}
		if correction.Changed() {
			content = correction.Content
		}
	}

	result, err := r.Engine.LintFile(ctx, path, content, cfg)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Result = result

	if outcome.Correction != nil {
		result.Diagnostics = append(result.Diagnostics, outcome.Correction.Diagnostics...)
	}

	return outcome
}

// writeBack persists corrected content, guarding against concurrent
// modification between the read and the write.
func (r *Runner) writeBack(ctx context.Context, path string, info *fsutil.FileInfo, content []byte) error {
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return fmt.Errorf("check modification: %w", err)
	}
	if modified {
		return fmt.Errorf("refusing to write %s: file changed during processing", path)
	}

	if r.Backups {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, content, info.Mode); err != nil {
		return fmt.Errorf("write fixes: %w", err)
	}
	return nil
}

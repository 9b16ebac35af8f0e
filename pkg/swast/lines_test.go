package swast_test

import (
	"testing"

	"github.com/yaklabco/goswiftlint/pkg/swast"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []swast.LineInfo
	}{
		{
			name:    "empty file",
			content: "",
			want:    []swast.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "let x = 1",
			want: []swast.LineInfo{
				{StartOffset: 0, NewlineStart: 9, EndOffset: 9},
			},
		},
		{
			name:    "single line with newline",
			content: "let x = 1\n",
			want: []swast.LineInfo{
				{StartOffset: 0, NewlineStart: 9, EndOffset: 10},
				{StartOffset: 10, NewlineStart: 10, EndOffset: 10},
			},
		},
		{
			name:    "two lines",
			content: "import Foo\nimport Bar\n",
			want: []swast.LineInfo{
				{StartOffset: 0, NewlineStart: 10, EndOffset: 11},
				{StartOffset: 11, NewlineStart: 21, EndOffset: 22},
				{StartOffset: 22, NewlineStart: 22, EndOffset: 22},
			},
		},
		{
			name:    "crlf endings",
			content: "a\r\nb\r\n",
			want: []swast.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := swast.BuildLines([]byte(tt.content))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	file := swast.NewFileSnapshot("test.swift", []byte("import Foo\nlet x = 1\n"))

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{7, 1, 8},
		{10, 1, 11}, // the newline itself
		{11, 2, 1},
		{15, 2, 5},
		{-1, 0, 0},
	}

	for _, tt := range tests {
		line, col := file.LineAt(tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("LineAt(%d) = (%d, %d), want (%d, %d)",
				tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestLineAtOffsetRoundTrip(t *testing.T) {
	t.Parallel()

	content := []byte("struct S {\n    var x: Int\n}\n")
	file := swast.NewFileSnapshot("test.swift", content)

	for offset := 0; offset < len(content); offset++ {
		line, col := file.LineAt(offset)
		back, ok := file.Offset(line, col)
		if !ok {
			t.Fatalf("Offset(%d, %d) failed for offset %d", line, col, offset)
		}
		if back != offset {
			t.Errorf("round trip for offset %d: got %d (line %d col %d)",
				offset, back, line, col)
		}
	}
}

func TestOffsetOutOfRange(t *testing.T) {
	t.Parallel()

	file := swast.NewFileSnapshot("test.swift", []byte("ab\ncd\n"))

	tests := []struct {
		line, col int
	}{
		{0, 1},
		{1, 0},
		{99, 1},
		{1, 99},
	}

	for _, tt := range tests {
		if _, ok := file.Offset(tt.line, tt.col); ok {
			t.Errorf("Offset(%d, %d) should fail", tt.line, tt.col)
		}
	}
}

func TestLineContent(t *testing.T) {
	t.Parallel()

	file := swast.NewFileSnapshot("test.swift", []byte("first\r\nsecond\nthird"))

	tests := []struct {
		line int
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
	}

	for _, tt := range tests {
		got := string(file.LineContent(tt.line))
		if got != tt.want {
			t.Errorf("LineContent(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}

	if file.LineContent(0) != nil || file.LineContent(99) != nil {
		t.Error("out-of-range LineContent should return nil")
	}
}

package rules

import (
	"bytes"

	"github.com/yaklabco/goswiftlint/pkg/fix"
	"github.com/yaklabco/goswiftlint/pkg/lint"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// TrailingNewlineRule requires files to end with exactly one newline.
type TrailingNewlineRule struct {
	lint.BaseRule
}

// NewTrailingNewlineRule creates the rule.
func NewTrailingNewlineRule() *TrailingNewlineRule {
	return &TrailingNewlineRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          "trailing-newline",
			Name:        "Trailing Newline",
			Description: "Files should end with a single trailing newline.",
			Tags:        []string{"style", "whitespace"},
			Fixable:     true,
			Examples: lint.Examples{
				Triggering: []string{
					"let a = 1",
					"let a = 1\n\n",
					"let a = 1\n\n\n",
				},
				NonTriggering: []string{
					"let a = 1\n",
					"",
				},
				Corrections: map[string]string{
					"let a = 1":     "let a = 1\n",
					"let a = 1\n\n\n": "let a = 1\n",
				},
			},
		}),
	}
}

// Apply reports a single violation for a missing or duplicated final newline.
func (r *TrailingNewlineRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	rng, missing, ok := trailingNewlineIssue(ctx.File)
	if !ok {
		return nil, nil
	}

	msg := "file should end with a single trailing newline"
	if missing {
		msg = "file is missing a trailing newline"
	}
	return []lint.Diagnostic{
		lint.NewDiagnostic(r, ctx).Message(msg).AtOffset(rng.StartOffset).Build(),
	}, nil
}

// Correct inserts the missing newline or trims the extras.
func (r *TrailingNewlineRule) Correct(ctx *lint.RuleContext) ([]fix.TextEdit, error) {
	rng, missing, ok := trailingNewlineIssue(ctx.File)
	if !ok {
		return nil, nil
	}

	builder := fix.NewEditBuilder()
	if missing {
		builder.Insert(rng.StartOffset, "\n")
	} else {
		builder.Delete(rng.StartOffset, rng.EndOffset)
	}
	return builder.Edits, nil
}

// trailingNewlineIssue returns the offending range, whether the newline is
// missing (as opposed to duplicated), and whether there is an issue at all.
// For duplicates, the range covers every newline beyond the first. Empty
// files are fine as they are.
func trailingNewlineIssue(file *swast.FileSnapshot) (swast.SourceRange, bool, bool) {
	content := file.Content
	if len(content) == 0 {
		return swast.SourceRange{}, false, false
	}

	if content[len(content)-1] != '\n' {
		return swast.SourceRange{StartOffset: len(content), EndOffset: len(content)}, true, true
	}

	// Trim complete newline sequences off the end; the issue range starts
	// after the first one that should stay.
	rest := content
	for {
		trimmed := bytes.TrimSuffix(rest, []byte("\r\n"))
		if len(trimmed) == len(rest) {
			trimmed = bytes.TrimSuffix(rest, []byte("\n"))
		}
		if len(trimmed) == len(rest) {
			break
		}
		rest = trimmed
	}

	keep := len(rest) + 1
	if content[len(rest)] == '\r' {
		keep = len(rest) + 2
	}
	if keep >= len(content) {
		return swast.SourceRange{}, false, false
	}
	return swast.SourceRange{StartOffset: keep, EndOffset: len(content)}, false, true
}

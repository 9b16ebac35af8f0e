package rules

import (
	"fmt"

	"github.com/yaklabco/goswiftlint/pkg/fix"
	"github.com/yaklabco/goswiftlint/pkg/lint"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// VerticalWhitespaceRule limits runs of consecutive blank lines.
type VerticalWhitespaceRule struct {
	lint.BaseRule
}

// NewVerticalWhitespaceRule creates the rule.
func NewVerticalWhitespaceRule() *VerticalWhitespaceRule {
	return &VerticalWhitespaceRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          "vertical-whitespace",
			Name:        "Vertical Whitespace",
			Description: "Limit vertical whitespace to a configurable number of consecutive empty lines.",
			Tags:        []string{"style", "whitespace"},
			Fixable:     true,
			Examples: lint.Examples{
				Triggering: []string{
					"let a = 1\n\n\nlet b = 2\n",
					"let a = 1\n\n\n\nlet b = 2\n",
				},
				NonTriggering: []string{
					"let a = 1\n\nlet b = 2\n",
					"let a = 1\nlet b = 2\n",
				},
				Corrections: map[string]string{
					"let a = 1\n\n\nlet b = 2\n":   "let a = 1\n\nlet b = 2\n",
					"let a = 1\n\n\n\nlet b = 2\n": "let a = 1\n\nlet b = 2\n",
				},
			},
		}),
	}
}

// Apply reports one violation per oversized blank run, at the first line
// beyond the limit.
func (r *VerticalWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	max := ctx.OptionInt("max-empty-lines", 1)

	var diags []lint.Diagnostic
	for _, run := range blankRuns(ctx.File) {
		if run.length() <= max {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(r, ctx).
			Message(fmt.Sprintf("limit vertical whitespace to %d empty line(s); found %d", max, run.length())).
			AtLine(run.start + max).
			Build())
	}
	return diags, nil
}

// Correct deletes the blank lines beyond the limit in each run.
func (r *VerticalWhitespaceRule) Correct(ctx *lint.RuleContext) ([]fix.TextEdit, error) {
	max := ctx.OptionInt("max-empty-lines", 1)

	builder := fix.NewEditBuilder()
	for _, run := range blankRuns(ctx.File) {
		if run.length() <= max {
			continue
		}
		first := ctx.File.Lines[run.start+max-1]
		last := ctx.File.Lines[run.end-1]
		builder.Delete(first.StartOffset, last.EndOffset)
	}
	return builder.Edits, nil
}

// blankRun is a maximal run of blank lines, 1-based and inclusive.
type blankRun struct {
	start int
	end   int
}

func (r blankRun) length() int {
	return r.end - r.start + 1
}

// blankRuns finds every maximal run of blank lines in the file. A final
// blank line that only exists because the file ends in a newline is not a
// run of its own.
func blankRuns(file *swast.FileSnapshot) []blankRun {
	var runs []blankRun
	runStart := 0

	lineCount := file.LineCount()
	if lineCount > 0 {
		last := file.Lines[lineCount-1]
		if last.StartOffset == last.EndOffset {
			lineCount--
		}
	}

	for line := 1; line <= lineCount; line++ {
		if lint.IsBlankLine(file, line) {
			if runStart == 0 {
				runStart = line
			}
			continue
		}
		if runStart > 0 {
			runs = append(runs, blankRun{start: runStart, end: line - 1})
			runStart = 0
		}
	}
	if runStart > 0 {
		runs = append(runs, blankRun{start: runStart, end: lineCount})
	}
	return runs
}

package rules

import (
	"github.com/yaklabco/goswiftlint/pkg/fix"
	"github.com/yaklabco/goswiftlint/pkg/lint"
)

// TrailingWhitespaceRule flags spaces and tabs at the end of a line.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates the rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          "trailing-whitespace",
			Name:        "Trailing Whitespace",
			Description: "Lines should not have trailing whitespace.",
			Tags:        []string{"style", "whitespace"},
			Fixable:     true,
			Examples: lint.Examples{
				Triggering: []string{
					"let a = 1 \n",
					"let a = 1\t\n",
				},
				NonTriggering: []string{
					"let a = 1\n",
					"// comment\n",
				},
				Corrections: map[string]string{
					"let a = 1 \n":       "let a = 1\n",
					"let a = 1\t\t\nlet b = 2\n": "let a = 1\nlet b = 2\n",
				},
			},
		}),
	}
}

// Apply reports a violation at the first trailing whitespace byte of each
// offending line.
func (r *TrailingWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	ignoreEmpty := ctx.OptionBool("ignores-empty-lines", false)

	var diags []lint.Diagnostic
	for line := 1; line <= ctx.File.LineCount(); line++ {
		rng, found := lint.TrailingWhitespaceRange(ctx.File, line)
		if !found {
			continue
		}
		if ignoreEmpty && lint.IsBlankLine(ctx.File, line) {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(r, ctx).
			Message("line has trailing whitespace").
			AtOffset(rng.StartOffset).
			Build())
	}
	return diags, nil
}

// Correct deletes the trailing whitespace of each offending line.
func (r *TrailingWhitespaceRule) Correct(ctx *lint.RuleContext) ([]fix.TextEdit, error) {
	ignoreEmpty := ctx.OptionBool("ignores-empty-lines", false)

	builder := fix.NewEditBuilder()
	for line := 1; line <= ctx.File.LineCount(); line++ {
		rng, found := lint.TrailingWhitespaceRange(ctx.File, line)
		if !found {
			continue
		}
		if ignoreEmpty && lint.IsBlankLine(ctx.File, line) {
			continue
		}
		builder.Delete(rng.StartOffset, rng.EndOffset)
	}
	return builder.Edits, nil
}

package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goswiftlint/pkg/lint"
)

// LineLengthRule flags lines longer than a configurable limit.
type LineLengthRule struct {
	lint.BaseRule
}

// NewLineLengthRule creates the rule.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          "line-length",
			Name:        "Line Length",
			Description: "Lines should not span too many characters.",
			Tags:        []string{"metrics"},
			Examples: lint.Examples{
				Triggering: []string{
					"let s = \"" + strings.Repeat("a", 130) + "\"\n",
				},
				NonTriggering: []string{
					"let s = \"short\"\n",
				},
			},
		}),
	}
}

// Apply reports each overlong line at the first character past the limit.
// Length is measured in characters, not bytes, so multibyte content is not
// penalized.
func (r *LineLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	max := ctx.OptionInt("max-length", 120)
	ignoreURLs := ctx.OptionBool("ignores-urls", false)

	var diags []lint.Diagnostic
	for line := 1; line <= ctx.File.LineCount(); line++ {
		length := lint.LineLength(ctx.File, line)
		if length <= max {
			continue
		}
		if ignoreURLs && strings.Contains(lint.LineText(ctx.File, line), "://") {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(r, ctx).
			Message(fmt.Sprintf("line should be %d characters or less; currently %d", max, length)).
			AtLine(line).
			Column(max + 1).
			Build())
	}
	return diags, nil
}

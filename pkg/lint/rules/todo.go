package rules

import (
	"strings"

	"github.com/yaklabco/goswiftlint/pkg/lint"
)

// TodoRule flags TODO and FIXME comments. Opt-in: many projects track work
// in comments deliberately.
type TodoRule struct {
	lint.BaseRule
}

// NewTodoRule creates the rule.
func NewTodoRule() *TodoRule {
	return &TodoRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          "todo",
			Name:        "Todo",
			Description: "TODO and FIXME comments should be resolved.",
			Tags:        []string{"maintenance"},
			OptIn:       true,
			Examples: lint.Examples{
				Triggering: []string{
					"// TODO: clean this up\n",
					"/* FIXME: broken on 32-bit */\n",
				},
				NonTriggering: []string{
					"// a perfectly fine comment\n",
					"let todo = 1\n",
				},
			},
		}),
	}
}

// Apply scans every comment for the configured markers.
func (r *TodoRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	markers := ctx.OptionStringSlice("markers", []string{"TODO", "FIXME"})

	var diags []lint.Diagnostic
	for _, tok := range ctx.File.Tokens {
		offset := tok.Offset
		for _, p := range tok.Leading {
			if p.IsComment() {
				diags = r.check(ctx, diags, markers, offset, p.Text)
			}
			offset += len(p.Text)
		}
		offset += len(tok.Text)
		for _, p := range tok.Trailing {
			if p.IsComment() {
				diags = r.check(ctx, diags, markers, offset, p.Text)
			}
			offset += len(p.Text)
		}
	}
	return diags, nil
}

func (r *TodoRule) check(
	ctx *lint.RuleContext,
	diags []lint.Diagnostic,
	markers []string,
	offset int,
	text string,
) []lint.Diagnostic {
	for _, marker := range markers {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		return append(diags, lint.NewDiagnostic(r, ctx).
			Message(marker+" should be resolved"+todoSummary(text, idx, marker)).
			AtOffset(offset+idx).
			Build())
	}
	return diags
}

// todoSummary extracts the text after the marker for the message, e.g.
// "TODO should be resolved (clean this up)".
func todoSummary(comment string, idx int, marker string) string {
	rest := comment[idx+len(marker):]
	rest = strings.TrimLeft(rest, ": ")
	rest = strings.TrimRight(rest, "*/ \n")
	if line := strings.IndexByte(rest, '\n'); line >= 0 {
		rest = rest[:line]
	}
	if rest == "" {
		return ""
	}
	return " (" + rest + ")"
}

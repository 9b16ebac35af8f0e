package rules

import (
	"strings"

	"github.com/yaklabco/goswiftlint/pkg/config"
	"github.com/yaklabco/goswiftlint/pkg/lint"
)

// ForceCastRule flags force casts (as!), which trap at runtime when the
// cast fails.
type ForceCastRule struct {
	lint.BaseRule
}

// NewForceCastRule creates the rule.
func NewForceCastRule() *ForceCastRule {
	return &ForceCastRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          "force-cast",
			Name:        "Force Cast",
			Description: "Force casts should be avoided.",
			Tags:        []string{"idiomatic", "safety"},
			Examples: lint.Examples{
				Triggering: []string{
					"let n = thing as! Int\n",
					"return view as! UITableView\n",
				},
				NonTriggering: []string{
					"let n = thing as? Int\n",
					"let n = thing as Int\n",
					"// as! in a comment\n",
					"let s = \"as! inside a string\"\n",
				},
			},
		}),
	}
}

// DefaultSeverity returns error: a failed force cast crashes.
func (r *ForceCastRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply scans the token stream for an 'as' keyword immediately followed by
// a bang. Comments and string literals never match because they are trivia
// and single tokens respectively.
func (r *ForceCastRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	tokens := ctx.File.Tokens
	for i := 0; i+1 < len(tokens); i++ {
		tok := tokens[i]
		if !tok.IsKeyword("as") {
			continue
		}
		next := tokens[i+1]
		if !strings.HasPrefix(next.Text, "!") || next.Offset != tok.TextEnd() {
			continue
		}
		diags = append(diags, lint.NewDiagnostic(r, ctx).
			Message("avoid force cast (as!); prefer conditional cast (as?)").
			AtToken(tok).
			Build())
	}
	return diags, nil
}

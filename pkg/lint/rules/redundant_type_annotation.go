package rules

import (
	"strings"

	"github.com/yaklabco/goswiftlint/pkg/fix"
	"github.com/yaklabco/goswiftlint/pkg/lint"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// RedundantTypeAnnotationRule flags variable bindings whose type annotation
// repeats the type already spelled by the initializer, as in
// `var url: URL = URL()`. Bindings initialized from literals are left alone:
// `let x: Int = 5` may be a deliberate narrowing.
type RedundantTypeAnnotationRule struct {
	lint.BaseRule
}

// NewRedundantTypeAnnotationRule creates the rule.
func NewRedundantTypeAnnotationRule() *RedundantTypeAnnotationRule {
	return &RedundantTypeAnnotationRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          "redundant-type-annotation",
			Name:        "Redundant Type Annotation",
			Description: "Variables should not have explicit type annotations when the initializer already names the type.",
			Tags:        []string{"idiomatic", "redundancy"},
			Fixable:     true,
			Examples: lint.Examples{
				Triggering: []string{
					"var url: URL = URL()\n",
					"let decoder: JSONDecoder = JSONDecoder()\n",
					"var items: Set<Int> = Set<Int>()\n",
				},
				NonTriggering: []string{
					"let x: Int = 5\n",
					"var url = URL()\n",
					"var delegate: SessionDelegate = DefaultDelegate()\n",
					"var count: Int\n",
				},
				Corrections: map[string]string{
					"var url: URL = URL()\n":       "var url = URL()\n",
					"let d: JSONDecoder = JSONDecoder()\nlet x: Int = 5\n": "let d = JSONDecoder()\nlet x: Int = 5\n",
				},
			},
		}),
	}
}

// Apply reports a violation at each redundant annotation's colon.
func (r *RedundantTypeAnnotationRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	err := ctx.Walk(func(n *swast.Node) error {
		ann := redundantAnnotation(n)
		if ann == nil {
			return nil
		}
		diags = append(diags, lint.NewDiagnostic(r, ctx).
			Message("type annotation is redundant; the initializer already names the type").
			AtNode(ann).
			Build())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return diags, nil
}

// Correct removes each redundant annotation, preserving any comments that
// sit inside it.
func (r *RedundantTypeAnnotationRule) Correct(ctx *lint.RuleContext) ([]fix.TextEdit, error) {
	builder := fix.NewEditBuilder()

	err := ctx.Walk(func(n *swast.Node) error {
		ann := redundantAnnotation(n)
		if ann == nil {
			return nil
		}
		start, end, replacement := swast.RemovalSplice(ann)
		builder.ReplaceRange(start, end, replacement)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return builder.Edits, nil
}

// redundantAnnotation returns the node's TypeAnnotation child when the
// sibling initializer spells the same type, else nil.
func redundantAnnotation(n *swast.Node) *swast.Node {
	if n.Kind != swast.KindVariableDecl {
		return nil
	}

	ann := n.ChildOfKind(swast.KindTypeAnnotation)
	initClause := n.ChildOfKind(swast.KindInitializerClause)
	if ann == nil || initClause == nil {
		return nil
	}

	annType := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(ann.Text())), ":"))
	if annType == "" {
		return nil
	}

	initExpr := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(initClause.Text())), "="))

	rest, ok := strings.CutPrefix(initExpr, annType)
	if !ok {
		return nil
	}
	if strings.HasPrefix(rest, "(") || strings.HasPrefix(rest, ".init(") {
		return ann
	}
	return nil
}

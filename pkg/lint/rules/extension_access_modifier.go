package rules

import (
	"github.com/yaklabco/goswiftlint/pkg/lint"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// ExtensionAccessModifierRule wants an explicit access modifier on an
// extension whose members all rely on implicit access. Opt-in.
type ExtensionAccessModifierRule struct {
	lint.BaseRule
}

// NewExtensionAccessModifierRule creates the rule.
func NewExtensionAccessModifierRule() *ExtensionAccessModifierRule {
	return &ExtensionAccessModifierRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          "extension-access-modifier",
			Name:        "Extension Access Modifier",
			Description: "Prefer an explicit access modifier on the extension when all members use implicit access.",
			Tags:        []string{"idiomatic"},
			OptIn:       true,
			Examples: lint.Examples{
				Triggering: []string{
					"extension String {\n  func a() {}\n  func b() {}\n}\n",
					"extension Point {\n  var x: Int { 0 }\n  var y: Int { 0 }\n}\n",
				},
				NonTriggering: []string{
					"public extension String {\n  func a() {}\n}\n",
					"extension String {\n  public func a() {}\n  public func b() {}\n}\n",
					"extension String {\n  func a() {}\n  private func b() {}\n}\n",
					"extension String {}\n",
				},
			},
		}),
	}
}

// Apply flags each qualifying extension once, at its introducer keyword.
func (r *ExtensionAccessModifierRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	err := ctx.Walk(func(n *swast.Node) error {
		if n.Kind != swast.KindExtensionDecl {
			return nil
		}
		if !membersUseImplicitAccess(n) {
			return nil
		}

		idx := n.KeywordToken("extension")
		if idx < 0 {
			return nil
		}
		diags = append(diags, lint.NewDiagnostic(r, ctx).
			Message("declare an access modifier on the extension; its members all use implicit access").
			AtToken(n.File.TokenAt(idx)).
			Build())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return diags, nil
}

// membersUseImplicitAccess reports whether the extension carries no access
// modifier itself and none of its direct members does either, with at least
// one member present.
func membersUseImplicitAccess(ext *swast.Node) bool {
	if _, has := lint.AccessModifier(ext); has {
		return false
	}

	body := ext.ChildOfKind(swast.KindMemberBlock)
	if body == nil {
		return false
	}

	count := 0
	for _, member := range body.Children() {
		if !member.IsDecl() {
			continue
		}
		if _, has := lint.AccessModifier(member); has {
			return false
		}
		count++
	}

	return count > 0
}

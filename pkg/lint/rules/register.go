// Package rules contains the built-in lint rules. Each rule registers
// itself with lint.DefaultRegistry at init time; importing this package for
// side effects makes the full catalog available.
package rules

import (
	"github.com/yaklabco/goswiftlint/pkg/lint"
)

// All returns fresh instances of every built-in rule, in catalog order.
// Callers that need an isolated registry (tests, embedding) use this instead
// of the shared DefaultRegistry.
func All() []lint.Rule {
	return []lint.Rule{
		NewRedundantTypeAnnotationRule(),
		NewExtensionAccessModifierRule(),
		NewTrailingWhitespaceRule(),
		NewTrailingNewlineRule(),
		NewVerticalWhitespaceRule(),
		NewLineLengthRule(),
		NewForceCastRule(),
		NewTodoRule(),
	}
}

// NewRegistry returns a registry populated with every built-in rule.
func NewRegistry() *lint.Registry {
	reg := lint.NewRegistry()
	for _, rule := range All() {
		reg.Register(rule)
	}
	return reg
}

func init() {
	for _, rule := range All() {
		lint.DefaultRegistry.Register(rule)
	}
}

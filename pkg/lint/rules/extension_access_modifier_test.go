package rules_test

import (
	"context"
	"testing"

	"github.com/yaklabco/goswiftlint/pkg/lint/rules"
)

func TestExtensionAccessModifierFlagsOnce(t *testing.T) {
	t.Parallel()

	rule := rules.NewExtensionAccessModifierRule()
	engine := newRuleEngine(rule)

	src := "extension String {\n    func a() {}\n    func b() {}\n}\n"
	result, err := engine.LintFile(
		context.Background(), "example.swift", []byte(src), exampleConfig(rule, false))
	if err != nil {
		t.Fatalf("LintFile error: %v", err)
	}

	// One violation for the whole extension, not one per member.
	if n := result.Counts[rule.ID()]; n != 1 {
		t.Fatalf("violations = %d, want 1: %v", n, result.Diagnostics)
	}

	d := result.Diagnostics[0]
	if d.Offset != 0 || d.Line != 1 || d.Column != 1 {
		t.Errorf("flagged at offset %d (%d:%d), want the extension keyword at 0 (1:1)",
			d.Offset, d.Line, d.Column)
	}
}

func TestExtensionAccessModifierExplicitMembers(t *testing.T) {
	t.Parallel()

	rule := rules.NewExtensionAccessModifierRule()
	engine := newRuleEngine(rule)

	sources := []string{
		"extension String {\n    public func a() {}\n    public func b() {}\n}\n",
		"public extension String {\n    func a() {}\n}\n",
		"extension String {}\n",
	}
	for _, src := range sources {
		result, err := engine.LintFile(
			context.Background(), "example.swift", []byte(src), exampleConfig(rule, false))
		if err != nil {
			t.Fatalf("LintFile error: %v", err)
		}
		if n := result.Counts[rule.ID()]; n != 0 {
			t.Errorf("source %q: violations = %d, want 0", src, n)
		}
	}
}

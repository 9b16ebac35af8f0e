// Package lint provides the rule engine, diagnostics, registry, suppression
// tracking, and correction loop for goswiftlint.
package lint

import (
	"github.com/yaklabco/goswiftlint/pkg/config"
	"github.com/yaklabco/goswiftlint/pkg/fix"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// Diagnostic represents a single lint issue found in a file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule.
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Offset is the absolute byte position of the issue: the first
	// non-trivia position of the construct being reported.
	Offset int

	// Line is the 1-based line number of Offset.
	Line int

	// Column is the 1-based column number of Offset.
	Column int

	// Tool marks diagnostics synthesized by the engine itself (rule
	// execution failures, correction divergence) rather than found in the
	// source.
	Tool bool
}

// Examples holds a rule's conformance examples: source snippets the rule
// must flag, must not flag, and must rewrite as given.
type Examples struct {
	// Triggering snippets each produce at least one violation.
	Triggering []string

	// NonTriggering snippets produce no violations.
	NonTriggering []string

	// Corrections maps input source to the exact output the rule's
	// correction must produce.
	Corrections map[string]string
}

// Rule defines the interface all lint rules implement. A rule's Apply is a
// read-only traversal: it must not mutate the tree or global state and must
// be safe to invoke concurrently with other rules over the same snapshot.
type Rule interface {
	// ID returns the unique identifier for this rule
	// (e.g., "redundant-type-annotation").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	// Opt-in rules return false and run only when explicitly enabled.
	DefaultEnabled() bool

	// OptIn returns true for rules that must be explicitly enabled.
	OptIn() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags (e.g., ["style", "idiomatic"]).
	Tags() []string

	// CanFix returns whether this rule can auto-fix issues. Rules
	// returning true must also implement Corrector.
	CanFix() bool

	// SkipKinds returns node kinds this rule's traversal never descends
	// into. Nil means the rule visits the whole tree.
	SkipKinds() []swast.NodeKind

	// Examples returns the rule's conformance examples.
	Examples() Examples

	// Apply executes the rule's read-only traversal and returns candidate
	// violations. Suppression filtering is the engine's job, not the
	// rule's. Return an error only for internal failures, never for
	// violations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}

// Corrector is the additional capability of correcting rules: a
// tree-rewriting traversal that proposes text edits. Edits from one rule
// must be mutually non-overlapping; the engine resolves conflicts across
// rules. The engine re-checks every edit against the disabled regions, so a
// Corrector need not filter them itself (ctx.Disabled is available for
// rules that want to skip work early).
type Corrector interface {
	Correct(ctx *RuleContext) ([]fix.TextEdit, error)
}

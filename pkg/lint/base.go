package lint

import (
	"github.com/yaklabco/goswiftlint/pkg/config"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
type BaseRule struct {
	id       string
	name     string
	desc     string
	tags     []string
	fixable  bool
	optIn    bool
	skip     []swast.NodeKind
	examples Examples
}

// RuleInfo carries the descriptor fields for NewBaseRule.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Tags        []string
	Fixable     bool
	OptIn       bool
	SkipKinds   []swast.NodeKind
	Examples    Examples
}

// NewBaseRule creates a BaseRule from its descriptor.
func NewBaseRule(info RuleInfo) BaseRule {
	return BaseRule{
		id:       info.ID,
		name:     info.Name,
		desc:     info.Description,
		tags:     info.Tags,
		fixable:  info.Fixable,
		optIn:    info.OptIn,
		skip:     info.SkipKinds,
		examples: info.Examples,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Opt-in rules are disabled until explicitly enabled.
func (r *BaseRule) DefaultEnabled() bool {
	return !r.optIn
}

// OptIn returns true for rules that must be explicitly enabled.
func (r *BaseRule) OptIn() bool {
	return r.optIn
}

// DefaultSeverity returns the default severity for this rule.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// CanFix returns whether this rule can auto-fix issues.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}

// SkipKinds returns node kinds this rule never descends into.
func (r *BaseRule) SkipKinds() []swast.NodeKind {
	return r.skip
}

// Examples returns the rule's conformance examples.
func (r *BaseRule) Examples() Examples {
	return r.examples
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no diagnostics.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}

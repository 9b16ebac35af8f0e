package lint

import (
	"context"

	"github.com/spf13/cast"

	"github.com/yaklabco/goswiftlint/pkg/config"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// RuleContext provides all context needed by a rule's traversal. It is a
// short-lived parameter object created per rule invocation; storing the
// context.Context as a field keeps the Rule interface to a single Apply
// method while still supporting cancellation via Cancelled().
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the parsed FileSnapshot.
	File *swast.FileSnapshot

	// Root is the tree root node (convenience alias for File.Root).
	Root *swast.Node

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	// Disabled holds the suppression regions computed for this text
	// version. The engine filters diagnostics and edits against them
	// independently; rules may consult them to skip work early.
	Disabled []DisabledRegion

	// skip is the rule's skip set, prebuilt for Walk.
	skip map[swast.NodeKind]bool
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *swast.FileSnapshot,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	var root *swast.Node
	if file != nil {
		root = file.Root
	}

	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Root:       root,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// WithSkipKinds sets the rule's skip set used by Walk.
func (rc *RuleContext) WithSkipKinds(kinds []swast.NodeKind) *RuleContext {
	if len(kinds) == 0 {
		rc.skip = nil
		return rc
	}
	rc.skip = make(map[swast.NodeKind]bool, len(kinds))
	for _, k := range kinds {
		rc.skip[k] = true
	}
	return rc
}

// Walk traverses the tree in document order, honoring the rule's skip set:
// skipped kinds are visited but not descended into.
func (rc *RuleContext) Walk(fn swast.WalkFunc) error {
	return swast.WalkSkipping(rc.Root, rc.skip, fn)
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
// Unknown option keys are simply never asked for, so they are ignored.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v, err := cast.ToIntE(rc.Option(key, defaultValue))
	if err != nil {
		return defaultValue
	}
	return v
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v, err := cast.ToStringE(rc.Option(key, defaultValue))
	if err != nil {
		return defaultValue
	}
	return v
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v, err := cast.ToBoolE(rc.Option(key, defaultValue))
	if err != nil {
		return defaultValue
	}
	return v
}

// OptionStringSlice returns a rule-specific string slice option, or the
// default. Handles []any values produced by YAML decoding.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v, err := cast.ToStringSliceE(rc.Option(key, defaultValue))
	if err != nil || len(v) == 0 {
		return defaultValue
	}
	return v
}

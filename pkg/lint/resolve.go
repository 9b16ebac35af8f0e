package lint

import (
	"github.com/yaklabco/goswiftlint/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// AutoFix indicates whether auto-fix is enabled for this rule.
	AutoFix bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ValidateConfig rejects configuration that names rules the registry does
// not know. Called once before any file is processed.
func ValidateConfig(registry *Registry, cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for id := range cfg.Rules {
		if _, ok := registry.Get(id); !ok {
			return &config.ConfigurationError{
				Field:   "rules." + id,
				Message: "unknown rule identifier",
			}
		}
	}
	for _, id := range cfg.EnableRules {
		if _, ok := registry.Get(id); !ok {
			return &config.ConfigurationError{Field: id, Message: "unknown rule identifier"}
		}
	}
	for _, id := range cfg.DisableRules {
		if _, ok := registry.Get(id); !ok {
			return &config.ConfigurationError{Field: id, Message: "unknown rule identifier"}
		}
	}
	return nil
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, in the registry's deterministic order.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule. Precedence:
// rule defaults, then config file, then explicit CLI enable/disable.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		AutoFix:  rule.CanFix(),
	}

	if cfg == nil {
		return rr
	}

	if cfg.SeverityDefault != "" && rr.Severity == "" {
		rr.Severity = config.Severity(cfg.SeverityDefault)
	}

	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rr.Severity = config.Severity(*ruleCfg.Severity)
		}
		if ruleCfg.AutoFix != nil {
			rr.AutoFix = *ruleCfg.AutoFix && rule.CanFix()
		}
	}

	for _, id := range cfg.EnableRules {
		if id == rule.ID() {
			rr.Enabled = true
			break
		}
	}
	for _, id := range cfg.DisableRules {
		if id == rule.ID() {
			rr.Enabled = false
			break
		}
	}

	// Auto-fix only applies when --fix is set.
	if !cfg.Fix {
		rr.AutoFix = false
	}

	return rr
}

// Package config defines core configuration types for goswiftlint.
// These types are pure data structures; file loading lives in yaml.go.
package config

import "fmt"

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true for a known severity value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration overrides. Nil pointer fields fall
// back to the rule's own defaults. Unknown keys inside Options are ignored
// by rules that do not understand them.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ConfigurationError indicates invalid configuration discovered before any
// file is processed (unknown rule identifier, invalid severity value).
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

// Config is the root configuration structure for goswiftlint.
type Config struct {
	// SeverityDefault is the default severity for rules that don't specify
	// one.
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule identifier.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// MaxFixPasses bounds the correction fixpoint loop. Zero means use the
	// engine default.
	MaxFixPasses int `yaml:"max_fix_passes"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without writing files.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers (0 = GOMAXPROCS).
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Format:          FormatText,
	}
}

// Validate checks field values that can be verified without a rule registry.
// Unknown rule identifiers are validated by the lint package, which knows
// the registry.
func (c *Config) Validate() error {
	if c.SeverityDefault != "" && !Severity(c.SeverityDefault).IsValid() {
		return &ConfigurationError{
			Field:   "severity_default",
			Message: fmt.Sprintf("unknown severity %q", c.SeverityDefault),
		}
	}
	for id, rc := range c.Rules {
		if rc.Severity != nil && !Severity(*rc.Severity).IsValid() {
			return &ConfigurationError{
				Field:   "rules." + id + ".severity",
				Message: fmt.Sprintf("unknown severity %q", *rc.Severity),
			}
		}
	}
	return nil
}

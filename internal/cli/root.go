// Package cli provides the Cobra command structure for goswiftlint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goswiftlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goswiftlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goswiftlint",
		Short: "A fast, self-fixing Swift linter",
		Long: `goswiftlint is a fast, self-fixing Swift source linter written in Go.

It parses Swift files into a lossless syntax tree, runs a configurable rule
catalog over them, and can automatically correct many issues while keeping
formatting and comments intact. Inline comment directives can suppress rules
for any region of a file.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

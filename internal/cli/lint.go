package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswiftlint/internal/logging"
	"github.com/yaklabco/goswiftlint/pkg/config"
	"github.com/yaklabco/goswiftlint/pkg/lint"
	_ "github.com/yaklabco/goswiftlint/pkg/lint/rules" // Register built-in rules
	swiftparser "github.com/yaklabco/goswiftlint/pkg/parser/swift"
	"github.com/yaklabco/goswiftlint/pkg/reporter"
	"github.com/yaklabco/goswiftlint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format       string
	ignore       []string
	enable       []string
	disable      []string
	maxFixPasses int
	strict       bool
	noContext    bool
	compact      bool
	backups      bool
	vendored     bool
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Swift files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint Swift files for style and correctness issues.

By default, lints all .swift files in the current directory and
subdirectories. Specify paths to lint specific files or directories.

Examples:
  goswiftlint lint                    # Lint current directory
  goswiftlint lint Sources/           # Lint Sources directory
  goswiftlint lint App.swift          # Lint single file
  goswiftlint lint --fix              # Lint and auto-fix issues
  goswiftlint lint --fix --dry-run    # Show fixes without applying
  goswiftlint lint --format json      # Output as JSON for CI
  goswiftlint lint --strict           # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	// CLI flags override file configuration.
	cfg.Fix = cliCfg.Fix
	cfg.DryRun = cliCfg.DryRun
	cfg.Jobs = cliCfg.Jobs
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	if flags.maxFixPasses > 0 {
		cfg.MaxFixPasses = flags.maxFixPasses
	}

	registry := lint.DefaultRegistry
	if err := lint.ValidateConfig(registry, cfg); err != nil {
		return errors.Join(errors.New("invalid configuration"), err)
	}

	logger.Debug("configuration loaded",
		logging.FieldConfig, configPath,
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	engine := lint.NewEngine(swiftparser.NewParser(), registry)
	lintRunner := runner.New(engine)
	lintRunner.Backups = flags.backups

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		SkipVendored: !flags.vendored,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, ok := reporter.ParseFormat(flags.format)
	if !ok {
		return fmt.Errorf("invalid format %q", flags.format)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, flags.strict) != ExitSuccess {
		return ErrLintIssuesFound
	}
	return nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().IntVar(&flags.maxFixPasses, "max-fix-passes", 0,
		"maximum correction passes per file (0 = use config)")
	cmd.Flags().BoolVar(&flags.backups, "backups", false, "create sidecar backups before fixing")
	cmd.Flags().BoolVar(&flags.vendored, "include-vendored", false,
		"also lint vendored and generated trees (Pods, .build, Carthage)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}

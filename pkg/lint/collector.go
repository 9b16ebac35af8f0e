package lint

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/goswiftlint/pkg/config"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// FileResult contains the results of linting a single file at one text
// version.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *swast.FileSnapshot

	// Diagnostics contains all surviving issues, sorted by position and
	// then by rule order. Includes synthetic tool diagnostics for rules
	// that failed internally.
	Diagnostics []Diagnostic

	// Disabled holds the suppression regions computed for this text
	// version.
	Disabled []DisabledRegion

	// RuleErrors maps rule IDs to their internal execution errors.
	// A failing rule never aborts the other rules.
	RuleErrors map[string]error

	// Counts maps rule IDs to the number of surviving diagnostics, for
	// summary reporting.
	Counts map[string]int
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// Engine coordinates parsing and rule execution.
type Engine struct {
	// Parser builds FileSnapshots from source text.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates an Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses content and runs every enabled rule's diagnosing
// traversal over the shared snapshot. Traversals are read-only, so they run
// concurrently. Violations inside a disabled region for their rule are
// dropped; survivors are sorted by position, with ties broken by the
// registry's rule order.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	resolved := ResolveRules(e.Registry, cfg)
	disabled := ComputeDisabledRegions(snapshot)

	result := &FileResult{
		Snapshot:   snapshot,
		Disabled:   disabled,
		RuleErrors: make(map[string]error),
		Counts:     make(map[string]int),
	}

	perRule := make([][]Diagnostic, len(resolved))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for i, rr := range resolved {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("linting cancelled: %w", err)
			}

			ruleCtx := NewRuleContext(gctx, snapshot, cfg, rr.Config).
				WithSkipKinds(rr.Rule.SkipKinds())
			ruleCtx.Registry = e.Registry
			ruleCtx.Disabled = disabled

			diags, ruleErr := applyRule(rr.Rule, ruleCtx)
			if ruleErr != nil {
				mu.Lock()
				result.RuleErrors[rr.Rule.ID()] = ruleErr
				mu.Unlock()
				return nil
			}
			perRule[i] = diags
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	for i, rr := range resolved {
		for _, diag := range perRule[i] {
			if Suppressed(disabled, rr.Rule.ID(), diag.Offset) {
				continue
			}

			diag.Severity = rr.Severity
			if diag.FilePath == "" {
				diag.FilePath = path
			}
			if diag.RuleName == "" {
				diag.RuleName = rr.Rule.Name()
			}

			result.Diagnostics = append(result.Diagnostics, diag)
			result.Counts[diag.RuleID]++
		}
	}

	// Failed rules surface as tool diagnostics so reporters need no
	// special-casing.
	for id, ruleErr := range result.RuleErrors {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			RuleID:   id,
			Message:  fmt.Sprintf("rule failed: %v", ruleErr),
			Severity: config.SeverityError,
			FilePath: path,
			Line:     1,
			Column:   1,
			Tool:     true,
		})
	}

	order := make(map[string]int, len(resolved))
	for i, rr := range resolved {
		order[rr.Rule.ID()] = i
	}
	sort.SliceStable(result.Diagnostics, func(i, j int) bool {
		a, b := result.Diagnostics[i], result.Diagnostics[j]
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		return order[a.RuleID] < order[b.RuleID]
	})

	return result, nil
}

// applyRule invokes a rule's traversal, converting panics into isolated
// rule execution errors so one misbehaving rule cannot abort the run.
func applyRule(rule Rule, ctx *RuleContext) (diags []Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			diags = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.ID(), r)
		}
	}()
	return rule.Apply(ctx)
}

package lint

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yaklabco/goswiftlint/pkg/config"
	"github.com/yaklabco/goswiftlint/pkg/fix"
)

// DefaultMaxFixPasses bounds the correction loop. Rules whose fixes enable
// further fixes converge within a couple of passes in practice; the bound
// exists so a misbehaving rule cannot loop forever.
const DefaultMaxFixPasses = 10

// CorrectionStatus describes how a correction run ended.
type CorrectionStatus int

const (
	// CorrectionStable means a pass produced no edits: the text is a
	// fixpoint of the enabled correcting rules.
	CorrectionStable CorrectionStatus = iota

	// CorrectionEdited means edits were applied and the text then reached
	// a fixpoint.
	CorrectionEdited

	// CorrectionDiverged means rules still produced edits when the pass
	// bound was reached. The last applied text is returned.
	CorrectionDiverged
)

// String returns the status name.
func (s CorrectionStatus) String() string {
	switch s {
	case CorrectionStable:
		return "stable"
	case CorrectionEdited:
		return "edited"
	case CorrectionDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// CorrectionResult is the outcome of running the correction loop on one
// file.
type CorrectionResult struct {
	// Content is the corrected text. Equal to the input when no edits
	// applied.
	Content []byte

	// Status reports how the loop ended.
	Status CorrectionStatus

	// Passes is the number of passes that applied at least one edit.
	Passes int

	// Applied counts applied edits per rule ID.
	Applied map[string]int

	// Diagnostics carries tool-level warnings from the loop itself,
	// currently only the divergence warning.
	Diagnostics []Diagnostic
}

// Changed returns true if the content differs from the input.
func (cr *CorrectionResult) Changed() bool {
	return cr.Status != CorrectionStable
}

// AppliedCount returns the total number of applied edits.
func (cr *CorrectionResult) AppliedCount() int {
	n := 0
	for _, c := range cr.Applied {
		n += c
	}
	return n
}

// CorrectFile runs the bounded fixpoint correction loop: parse, collect
// edits from every auto-fix-enabled correcting rule, resolve cross-rule
// overlaps, apply, and repeat on the new text until a pass yields no edits
// or the pass bound is hit. Suppression regions are recomputed each pass and
// every edit is checked against them independently of any diagnostic.
func (e *Engine) CorrectFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*CorrectionResult, error) {
	maxPasses := DefaultMaxFixPasses
	if cfg != nil && cfg.MaxFixPasses > 0 {
		maxPasses = cfg.MaxFixPasses
	}

	result := &CorrectionResult{
		Content: content,
		Status:  CorrectionStable,
		Applied: make(map[string]int),
	}

	for pass := 0; pass < maxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("correction cancelled: %w", err)
		}

		edits, err := e.collectEdits(ctx, path, result.Content, cfg)
		if err != nil {
			return result, err
		}
		if len(edits) == 0 {
			return result, nil
		}

		accepted, _, err := fix.ResolveOverlaps(edits, len(result.Content))
		if err != nil {
			return result, fmt.Errorf("invalid edit from rule: %w", err)
		}
		// Deferred losers are not applied this pass; their rules see the
		// new text next pass and regenerate edits at fresh offsets.

		next := fix.ApplyEdits(result.Content, accepted)
		if bytes.Equal(next, result.Content) {
			// Edits that change nothing would loop forever; treat the
			// text as converged.
			return result, nil
		}

		result.Content = next
		result.Status = CorrectionEdited
		result.Passes++
		for _, ed := range accepted {
			result.Applied[ed.RuleID]++
		}
	}

	// One more collection decides between convergence on the final pass
	// and divergence.
	edits, err := e.collectEdits(ctx, path, result.Content, cfg)
	if err != nil {
		return result, err
	}
	if len(edits) > 0 {
		result.Status = CorrectionDiverged
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			RuleID: "correction",
			Message: fmt.Sprintf(
				"corrections did not converge after %d passes; %d edits remain unapplied",
				maxPasses, len(edits)),
			Severity: config.SeverityWarning,
			FilePath: path,
			Line:     1,
			Column:   1,
			Tool:     true,
		})
	}

	return result, nil
}

// collectEdits parses one text version and gathers edits from every
// correcting rule with auto-fix enabled. Each edit is tagged with its rule
// ID and dropped if any part of its range is suppressed for that rule. A
// failing rule contributes nothing; its diagnosing traversal will report the
// failure on the following lint.
func (e *Engine) collectEdits(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) ([]fix.TextEdit, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	disabled := ComputeDisabledRegions(snapshot)
	resolved := ResolveRules(e.Registry, cfg)

	var edits []fix.TextEdit
	for _, rr := range resolved {
		if !rr.AutoFix {
			continue
		}
		corrector, ok := rr.Rule.(Corrector)
		if !ok {
			continue
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config).
			WithSkipKinds(rr.Rule.SkipKinds())
		ruleCtx.Registry = e.Registry
		ruleCtx.Disabled = disabled

		ruleEdits, err := applyCorrector(rr.Rule.ID(), corrector, ruleCtx)
		if err != nil {
			continue
		}

		for _, ed := range ruleEdits {
			ed.RuleID = rr.Rule.ID()
			if SuppressedRange(disabled, ed.RuleID, ed.StartOffset, ed.EndOffset) {
				continue
			}
			edits = append(edits, ed)
		}
	}

	return edits, nil
}

// applyCorrector invokes a rule's correcting traversal, converting panics
// into errors so a broken fixer cannot abort the whole file.
func applyCorrector(id string, c Corrector, ctx *RuleContext) (edits []fix.TextEdit, err error) {
	defer func() {
		if r := recover(); r != nil {
			edits = nil
			err = fmt.Errorf("rule %s panicked during correction: %v", id, r)
		}
	}()
	return c.Correct(ctx)
}

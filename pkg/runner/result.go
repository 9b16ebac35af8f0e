package runner

import "github.com/yaklabco/goswiftlint/pkg/lint"

// FileOutcome is the per-file output of a run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the lint result for the file's final text. May be
	// nil if the file errored or was skipped.
	Result *lint.FileResult

	// Correction contains the correction outcome when fixing ran.
	Correction *lint.CorrectionResult

	// Written is true if fixes were written back to disk.
	Written bool

	// Skipped is true if the file was skipped (generated content,
	// concurrent modification, binary data).
	Skipped bool

	// SkipReason describes why the file was skipped.
	SkipReason string

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesModified is the number of files rewritten by fixes.
	FilesModified int

	// DiagnosticsFixed is the total number of edits applied across all
	// files.
	DiagnosticsFixed int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any diagnostics with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity["error"] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Written {
		r.Stats.FilesModified++
	}
	if outcome.Correction != nil {
		r.Stats.DiagnosticsFixed += outcome.Correction.AppliedCount()
	}

	if outcome.Result != nil {
		diagCount := outcome.Result.IssueCount()
		r.Stats.DiagnosticsTotal += diagCount
		if diagCount > 0 {
			r.Stats.FilesWithIssues++
		}
		for _, diag := range outcome.Result.Diagnostics {
			severity := string(diag.Severity)
			if severity == "" {
				severity = "warning"
			}
			r.Stats.DiagnosticsBySeverity[severity]++
		}
	}
}

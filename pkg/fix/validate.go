package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an invalid edit.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] (%s) and [%d:%d] (%s)",
		e.Edit1.StartOffset, e.Edit1.EndOffset, e.Edit1.RuleID,
		e.Edit2.StartOffset, e.Edit2.EndOffset, e.Edit2.RuleID)
}

// ValidateEdits checks that all edits have valid ranges for the given content
// length. Returns nil if all edits are valid, or the first validation error.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if edit.StartOffset < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// SortEdits sorts edits by start offset, then end offset, then rule ID.
// This produces a deterministic order for edit application.
func SortEdits(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		if edits[i].EndOffset != edits[j].EndOffset {
			return edits[i].EndOffset < edits[j].EndOffset
		}
		return edits[i].RuleID < edits[j].RuleID
	})
}

// DetectConflicts checks for overlapping edits in a sorted slice.
// Returns nil if no conflicts, or the first conflict found.
// Edits must be sorted by SortEdits before calling.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev := edits[i-1]
		curr := edits[i]
		if curr.StartOffset < prev.EndOffset {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
	}
	return nil
}

// ResolveOverlaps validates, sorts, and resolves conflicts between edits
// from different rules. When two edits overlap, the edit belonging to the
// lexicographically earlier rule identifier is kept and the other is
// deferred (returned in the second slice) so its rule can retry on the next
// correction pass.
//
// Returns (accepted edits sorted by start offset, deferred edits, error).
// Error is returned only for range validation failures.
func ResolveOverlaps(edits []TextEdit, contentLen int) ([]TextEdit, []TextEdit, error) {
	if len(edits) == 0 {
		return nil, nil, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, nil, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	SortEdits(sorted)

	accepted := make([]TextEdit, 0, len(sorted))
	var deferred []TextEdit

	for _, edit := range sorted {
		if len(accepted) == 0 {
			accepted = append(accepted, edit)
			continue
		}

		last := accepted[len(accepted)-1]
		if !edit.Overlaps(last) {
			accepted = append(accepted, edit)
			continue
		}

		// Conflict between two rules: lexicographically earlier rule ID
		// wins, the loser retries next pass. Sorted order means the edit
		// already accepted started earlier (or ties were broken by rule
		// ID), so prefer it unless the newcomer's rule sorts strictly
		// lower.
		if edit.RuleID < last.RuleID {
			accepted[len(accepted)-1] = edit
			deferred = append(deferred, last)
		} else {
			deferred = append(deferred, edit)
		}
	}

	return accepted, deferred, nil
}

package swift

import "fmt"

// ParseError indicates that source text could not be structured at all.
// It is fatal for the file being processed but never aborts a multi-file run.
type ParseError struct {
	// Path is the file being parsed (may be empty for in-memory content).
	Path string

	// Offset is the byte offset where parsing failed.
	Offset int

	// Message describes the failure.
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s at offset %d: %s", e.Path, e.Offset, e.Message)
	}
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

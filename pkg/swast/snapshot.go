// Package swast provides the core Swift syntax tree representation for
// goswiftlint. It defines a lossless, immutable view of Swift files:
// - FileSnapshot: the complete file representation
// - Token stream: every byte classified, trivia attached to tokens
// - Nodes: structural representation referencing token spans
package swast

import "bytes"

// FileSnapshot is an immutable, lossless view of a Swift file at a specific
// text version. Corrections never mutate a snapshot; they produce new text
// which is re-parsed into a new snapshot.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tokens is the full token stream covering every byte.
	Tokens []Token

	// Root is the tree root node (SourceFile).
	Root *Node
}

// NewFileSnapshot creates a FileSnapshot from content. It builds the line
// index but does not tokenize or parse (that requires a Parser).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// Serialize reconstructs the source text from the token stream.
// For a valid snapshot this is byte-identical to Content.
func (f *FileSnapshot) Serialize() []byte {
	var out bytes.Buffer
	out.Grow(len(f.Content))
	for _, tok := range f.Tokens {
		out.WriteString(tok.Leading.String())
		out.WriteString(tok.Text)
		out.WriteString(tok.Trailing.String())
	}
	return out.Bytes()
}

// TokenAt returns the token at the given stream index, or a zero Token if
// the index is out of range.
func (f *FileSnapshot) TokenAt(idx int) Token {
	if idx < 0 || idx >= len(f.Tokens) {
		return Token{}
	}
	return f.Tokens[idx]
}

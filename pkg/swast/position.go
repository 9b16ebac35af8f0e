package swast

// SourceRange represents a byte range in the source content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Overlaps returns true if the two ranges share any byte.
func (r SourceRange) Overlaps(other SourceRange) bool {
	return r.StartOffset < other.EndOffset && other.StartOffset < r.EndOffset
}

// Position represents a 1-based line and column in a file.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has positive line and column.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// SourcePosition represents a range in terms of line/column positions.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Start returns the start position.
func (sp SourcePosition) Start() Position {
	return Position{Line: sp.StartLine, Column: sp.StartColumn}
}

// End returns the end position.
func (sp SourcePosition) End() Position {
	return Position{Line: sp.EndLine, Column: sp.EndColumn}
}

// IsValid returns true if both start and end positions are valid.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// Range returns the byte range of the node's own text, excluding the leading
// trivia of its first token and the trailing trivia of its last token. The
// start of this range is the canonical position reported for a violation, so
// diagnostic locations are stable regardless of surrounding indentation or
// blank lines.
func (n *Node) Range() SourceRange {
	tokens := n.Tokens()
	if len(tokens) == 0 {
		return SourceRange{}
	}
	return SourceRange{
		StartOffset: tokens[0].TextStart(),
		EndOffset:   tokens[len(tokens)-1].TextEnd(),
	}
}

// FullRange returns the byte range of the node including the leading trivia
// of its first token and the trailing trivia of its last token. Concatenating
// the FullRanges of a node's children in order covers the node exactly.
func (n *Node) FullRange() SourceRange {
	tokens := n.Tokens()
	if len(tokens) == 0 {
		return SourceRange{}
	}
	return SourceRange{
		StartOffset: tokens[0].Offset,
		EndOffset:   tokens[len(tokens)-1].FullEnd(),
	}
}

// SourcePosition returns the line/column range for this node's text.
func (n *Node) SourcePosition() SourcePosition {
	if n.File == nil {
		return SourcePosition{}
	}

	r := n.Range()
	if n.FirstToken < 0 {
		return SourcePosition{}
	}

	startLine, startCol := n.File.LineAt(r.StartOffset)
	endLine, endCol := n.File.LineAt(r.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// Text returns the source text for this node's Range.
func (n *Node) Text() []byte {
	if n.File == nil {
		return nil
	}

	r := n.Range()
	if r.StartOffset < 0 || r.EndOffset > len(n.File.Content) {
		return nil
	}

	return n.File.Content[r.StartOffset:r.EndOffset]
}

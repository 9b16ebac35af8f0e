package swast

//go:generate stringer -type=TokenKind -trimprefix=Tok

// TokenKind classifies the type of a token in Swift source.
type TokenKind uint16

// Token kinds cover every non-trivia span in the source.
const (
	TokIdentifier TokenKind = iota
	TokKeyword
	TokIntegerLiteral
	TokFloatLiteral
	TokStringLiteral
	TokOperator

	TokColon
	TokComma
	TokSemicolon
	TokEquals
	TokPeriod
	TokArrow // '->'

	TokLeftParen
	TokRightParen
	TokLeftBrace
	TokRightBrace
	TokLeftBracket
	TokRightBracket

	TokAttribute      // '@' + name
	TokPoundDirective // '#if', '#available', etc.
	TokEOF

	TokUnknown
)

// TriviaKind classifies a single piece of trivia.
type TriviaKind uint8

// Trivia kinds for whitespace and comments.
const (
	TriviaSpaces TriviaKind = iota
	TriviaTabs
	TriviaNewlines
	TriviaLineComment     // '// ...'
	TriviaBlockComment    // '/* ... */'
	TriviaDocLineComment  // '/// ...'
	TriviaDocBlockComment // '/** ... */'
)

// TriviaPiece is a run of formatting material attached to a token.
type TriviaPiece struct {
	Kind TriviaKind
	Text string
}

// IsComment returns true if this piece is any form of comment.
func (p TriviaPiece) IsComment() bool {
	switch p.Kind {
	case TriviaLineComment, TriviaBlockComment, TriviaDocLineComment, TriviaDocBlockComment:
		return true
	default:
		return false
	}
}

// IsNewline returns true if this piece contains line terminators.
func (p TriviaPiece) IsNewline() bool {
	return p.Kind == TriviaNewlines
}

// Trivia is an ordered sequence of trivia pieces.
type Trivia []TriviaPiece

// Len returns the total byte length of the trivia.
func (t Trivia) Len() int {
	n := 0
	for _, p := range t {
		n += len(p.Text)
	}
	return n
}

// String concatenates all pieces back to source text.
func (t Trivia) String() string {
	if len(t) == 0 {
		return ""
	}
	out := make([]byte, 0, t.Len())
	for _, p := range t {
		out = append(out, p.Text...)
	}
	return string(out)
}

// Comments returns only the comment pieces, in order.
func (t Trivia) Comments() Trivia {
	var out Trivia
	for _, p := range t {
		if p.IsComment() {
			out = append(out, p)
		}
	}
	return out
}

// ContainsNewline returns true if any piece is a newline run.
func (t Trivia) ContainsNewline() bool {
	for _, p := range t {
		if p.IsNewline() {
			return true
		}
	}
	return false
}

// Token is a classified span of Swift source with attached trivia.
// Serializing Leading + Text + Trailing for every token in order reproduces
// the original source exactly.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Text is the token's literal source text, excluding trivia.
	Text string

	// Leading is the trivia preceding the token text (indentation,
	// newlines, comments on their own lines).
	Leading Trivia

	// Trailing is the trivia following the token text up to, but not
	// including, the next line terminator.
	Trailing Trivia

	// Offset is the absolute byte offset where Leading begins.
	Offset int
}

// TextStart returns the absolute offset of the token text.
func (t Token) TextStart() int {
	return t.Offset + t.Leading.Len()
}

// TextEnd returns the absolute offset just past the token text.
func (t Token) TextEnd() int {
	return t.TextStart() + len(t.Text)
}

// FullEnd returns the absolute offset just past the trailing trivia.
func (t Token) FullEnd() int {
	return t.TextEnd() + t.Trailing.Len()
}

// FullWidth returns the token's width including both trivia runs.
func (t Token) FullWidth() int {
	return t.Leading.Len() + len(t.Text) + t.Trailing.Len()
}

// IsKeyword returns true if the token is the given keyword.
func (t Token) IsKeyword(kw string) bool {
	return t.Kind == TokKeyword && t.Text == kw
}

// ValidateTokens checks that a token slice is contiguous, covers
// [0, contentLen), and ends with an EOF token.
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}
	if tokens[0].Offset != 0 {
		return false
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Offset != tokens[i-1].FullEnd() {
			return false
		}
	}
	last := tokens[len(tokens)-1]
	return last.Kind == TokEOF && last.FullEnd() == contentLen
}

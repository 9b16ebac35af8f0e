package swift

import (
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// tokenizer performs a single-pass tokenization of Swift source.
// It produces a token stream where every byte belongs to exactly one token's
// leading trivia, text, or trailing trivia, so serializing the stream
// reproduces the input exactly.
type tokenizer struct {
	content []byte
	tokens  []swast.Token
	pos     int
	err     error
}

// Tokenize scans content into a trivia-attached token stream terminated by
// an EOF token. Trailing trivia extends to the end of the current line;
// newlines and whole-line comments attach as leading trivia of the next
// token.
func Tokenize(content []byte) ([]swast.Token, error) {
	const initialCapacityDivisor = 8
	tok := &tokenizer{
		content: content,
		tokens:  make([]swast.Token, 0, len(content)/initialCapacityDivisor+1),
	}

	tok.tokenize()

	if tok.err != nil {
		return nil, tok.err
	}
	return tok.tokens, nil
}

func (t *tokenizer) tokenize() {
	for {
		offset := t.pos
		leading := t.scanTrivia(false)
		if t.err != nil {
			return
		}

		if t.pos >= len(t.content) {
			t.tokens = append(t.tokens, swast.Token{
				Kind:    swast.TokEOF,
				Leading: leading,
				Offset:  offset,
			})
			return
		}

		kind, text := t.scanToken()
		if t.err != nil {
			return
		}

		trailing := t.scanTrivia(true)
		if t.err != nil {
			return
		}

		t.tokens = append(t.tokens, swast.Token{
			Kind:     kind,
			Text:     text,
			Leading:  leading,
			Trailing: trailing,
			Offset:   offset,
		})
	}
}

// scanTrivia consumes whitespace and comments. In trailing mode it stops at
// the first line terminator, which then begins the next token's leading
// trivia.
func (t *tokenizer) scanTrivia(trailing bool) swast.Trivia {
	var trivia swast.Trivia

	for t.pos < len(t.content) {
		c := t.content[t.pos]
		switch {
		case c == ' ':
			trivia = append(trivia, t.scanRun(' ', swast.TriviaSpaces))
		case c == '\t':
			trivia = append(trivia, t.scanRun('\t', swast.TriviaTabs))
		case c == '\n' || c == '\r':
			if trailing {
				return trivia
			}
			trivia = append(trivia, t.scanNewlines())
		case c == '/' && t.peek(1) == '/':
			trivia = append(trivia, t.scanLineComment())
		case c == '/' && t.peek(1) == '*':
			piece := t.scanBlockComment()
			if t.err != nil {
				return nil
			}
			trivia = append(trivia, piece)
		default:
			return trivia
		}
	}

	return trivia
}

func (t *tokenizer) scanRun(b byte, kind swast.TriviaKind) swast.TriviaPiece {
	start := t.pos
	for t.pos < len(t.content) && t.content[t.pos] == b {
		t.pos++
	}
	return swast.TriviaPiece{Kind: kind, Text: string(t.content[start:t.pos])}
}

func (t *tokenizer) scanNewlines() swast.TriviaPiece {
	start := t.pos
	for t.pos < len(t.content) && (t.content[t.pos] == '\n' || t.content[t.pos] == '\r') {
		t.pos++
	}
	return swast.TriviaPiece{Kind: swast.TriviaNewlines, Text: string(t.content[start:t.pos])}
}

func (t *tokenizer) scanLineComment() swast.TriviaPiece {
	start := t.pos
	kind := swast.TriviaLineComment
	if t.peek(2) == '/' && t.peek(3) != '/' {
		kind = swast.TriviaDocLineComment
	}
	for t.pos < len(t.content) && t.content[t.pos] != '\n' && t.content[t.pos] != '\r' {
		t.pos++
	}
	return swast.TriviaPiece{Kind: kind, Text: string(t.content[start:t.pos])}
}

// scanBlockComment consumes a (possibly nested) block comment.
func (t *tokenizer) scanBlockComment() swast.TriviaPiece {
	start := t.pos
	kind := swast.TriviaBlockComment
	if t.peek(2) == '*' && t.peek(3) != '*' && t.peek(3) != '/' {
		kind = swast.TriviaDocBlockComment
	}

	t.pos += 2 // consume '/*'
	depth := 1
	for t.pos < len(t.content) && depth > 0 {
		if t.content[t.pos] == '/' && t.peek(1) == '*' {
			depth++
			t.pos += 2
			continue
		}
		if t.content[t.pos] == '*' && t.peek(1) == '/' {
			depth--
			t.pos += 2
			continue
		}
		t.pos++
	}

	if depth > 0 {
		t.err = &ParseError{Offset: start, Message: "unterminated block comment"}
		return swast.TriviaPiece{}
	}

	return swast.TriviaPiece{Kind: kind, Text: string(t.content[start:t.pos])}
}

// scanToken scans one non-trivia token starting at the current position.
func (t *tokenizer) scanToken() (swast.TokenKind, string) {
	start := t.pos
	c := t.content[t.pos]

	switch {
	case isIdentStart(c):
		return t.scanIdentifier()
	case c == '`':
		return t.scanBacktickIdentifier()
	case c == '$':
		t.pos++
		for t.pos < len(t.content) && isIdentChar(t.content[t.pos]) {
			t.pos++
		}
		return swast.TokIdentifier, string(t.content[start:t.pos])
	case isDigit(c):
		return t.scanNumber()
	case c == '"':
		return t.scanString()
	case c == '@':
		t.pos++
		for t.pos < len(t.content) && isIdentChar(t.content[t.pos]) {
			t.pos++
		}
		return swast.TokAttribute, string(t.content[start:t.pos])
	case c == '#':
		t.pos++
		for t.pos < len(t.content) && isIdentChar(t.content[t.pos]) {
			t.pos++
		}
		return swast.TokPoundDirective, string(t.content[start:t.pos])
	}

	// Single-byte punctuation.
	if kind, ok := punctKind(c); ok {
		t.pos++
		return kind, string(t.content[start:t.pos])
	}

	if isOperatorChar(c) {
		return splitPeriod(t.scanOperator())
	}

	t.pos++
	return swast.TokUnknown, string(t.content[start:t.pos])
}

func (t *tokenizer) scanIdentifier() (swast.TokenKind, string) {
	start := t.pos
	for t.pos < len(t.content) && isIdentChar(t.content[t.pos]) {
		t.pos++
	}
	text := string(t.content[start:t.pos])
	if swiftKeywords[text] {
		return swast.TokKeyword, text
	}
	return swast.TokIdentifier, text
}

func (t *tokenizer) scanBacktickIdentifier() (swast.TokenKind, string) {
	start := t.pos
	t.pos++ // opening backtick
	for t.pos < len(t.content) && t.content[t.pos] != '`' && t.content[t.pos] != '\n' {
		t.pos++
	}
	if t.pos < len(t.content) && t.content[t.pos] == '`' {
		t.pos++
	}
	return swast.TokIdentifier, string(t.content[start:t.pos])
}

func (t *tokenizer) scanNumber() (swast.TokenKind, string) {
	start := t.pos
	isFloat := false

	// Hex/octal/binary prefixes.
	if t.content[t.pos] == '0' && t.pos+1 < len(t.content) {
		switch t.content[t.pos+1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			t.pos += 2
			for t.pos < len(t.content) && (isHexDigit(t.content[t.pos]) || t.content[t.pos] == '_') {
				t.pos++
			}
			return swast.TokIntegerLiteral, string(t.content[start:t.pos])
		}
	}

	for t.pos < len(t.content) {
		c := t.content[t.pos]
		switch {
		case isDigit(c) || c == '_':
			t.pos++
		case c == '.' && t.pos+1 < len(t.content) && isDigit(t.content[t.pos+1]) && !isFloat:
			isFloat = true
			t.pos++
		case (c == 'e' || c == 'E') && t.pos+1 < len(t.content) &&
			(isDigit(t.content[t.pos+1]) || t.content[t.pos+1] == '+' || t.content[t.pos+1] == '-'):
			isFloat = true
			t.pos += 2
		default:
			if isFloat {
				return swast.TokFloatLiteral, string(t.content[start:t.pos])
			}
			return swast.TokIntegerLiteral, string(t.content[start:t.pos])
		}
	}

	if isFloat {
		return swast.TokFloatLiteral, string(t.content[start:t.pos])
	}
	return swast.TokIntegerLiteral, string(t.content[start:t.pos])
}

// scanString consumes a string literal, handling escapes, interpolation, and
// multiline (""") strings.
func (t *tokenizer) scanString() (swast.TokenKind, string) {
	start := t.pos

	multiline := t.peek(1) == '"' && t.peek(2) == '"'
	if multiline {
		t.pos += 3
		for t.pos < len(t.content) {
			if t.content[t.pos] == '"' && t.peek(1) == '"' && t.peek(2) == '"' {
				t.pos += 3
				return swast.TokStringLiteral, string(t.content[start:t.pos])
			}
			if t.content[t.pos] == '\\' {
				t.pos++
			}
			t.pos++
		}
		t.err = &ParseError{Offset: start, Message: "unterminated string literal"}
		return swast.TokStringLiteral, ""
	}

	t.pos++ // opening quote
	for t.pos < len(t.content) {
		c := t.content[t.pos]
		switch c {
		case '"':
			t.pos++
			return swast.TokStringLiteral, string(t.content[start:t.pos])
		case '\n':
			t.err = &ParseError{Offset: start, Message: "unterminated string literal"}
			return swast.TokStringLiteral, ""
		case '\\':
			if t.peek(1) == '(' {
				t.pos += 2
				t.skipInterpolation()
				continue
			}
			t.pos += 2
		default:
			t.pos++
		}
	}

	t.err = &ParseError{Offset: start, Message: "unterminated string literal"}
	return swast.TokStringLiteral, ""
}

// skipInterpolation consumes the balanced parenthesized expression of a
// string interpolation segment, stopping after the closing paren.
func (t *tokenizer) skipInterpolation() {
	depth := 1
	for t.pos < len(t.content) && depth > 0 {
		switch t.content[t.pos] {
		case '(':
			depth++
		case ')':
			depth--
		case '\\':
			t.pos++
		}
		t.pos++
	}
}

func (t *tokenizer) scanOperator() (swast.TokenKind, string) {
	start := t.pos
	for t.pos < len(t.content) && isOperatorChar(t.content[t.pos]) {
		// Stop before comment openers inside operator runs.
		if t.content[t.pos] == '/' && (t.peek(1) == '/' || t.peek(1) == '*') {
			break
		}
		t.pos++
	}
	text := string(t.content[start:t.pos])

	switch text {
	case "=":
		return swast.TokEquals, text
	case "->":
		return swast.TokArrow, text
	}
	return swast.TokOperator, text
}

func (t *tokenizer) peek(n int) byte {
	if t.pos+n >= len(t.content) {
		return 0
	}
	return t.content[t.pos+n]
}

func punctKind(c byte) (swast.TokenKind, bool) {
	switch c {
	case ':':
		return swast.TokColon, true
	case ',':
		return swast.TokComma, true
	case ';':
		return swast.TokSemicolon, true
	case '(':
		return swast.TokLeftParen, true
	case ')':
		return swast.TokRightParen, true
	case '{':
		return swast.TokLeftBrace, true
	case '}':
		return swast.TokRightBrace, true
	case '[':
		return swast.TokLeftBracket, true
	case ']':
		return swast.TokRightBracket, true
	}
	return 0, false
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOperatorChar(c byte) bool {
	switch c {
	case '/', '=', '-', '+', '!', '*', '%', '<', '>', '&', '|', '^', '~', '?', '.':
		return true
	default:
		return false
	}
}

// '.' is lexed as TokPeriod only when it stands alone; runs like '...' or
// '..<' come out of scanOperator. scanToken routes single '.' through
// scanOperator as well, so split it here.
func splitPeriod(kind swast.TokenKind, text string) (swast.TokenKind, string) {
	if kind == swast.TokOperator && text == "." {
		return swast.TokPeriod, text
	}
	return kind, text
}

// swiftKeywords is the set of reserved words recognized as TokKeyword.
var swiftKeywords = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true, "open": true,
	"operator": true, "private": true, "protocol": true, "public": true,
	"rethrows": true, "static": true, "struct": true, "subscript": true,
	"typealias": true, "var": true, "actor": true,

	"break": true, "case": true, "continue": true, "default": true,
	"defer": true, "do": true, "else": true, "fallthrough": true,
	"for": true, "guard": true, "if": true, "in": true, "repeat": true,
	"return": true, "switch": true, "where": true, "while": true,
	"catch": true, "throw": true, "throws": true, "try": true,

	"as": true, "is": true, "nil": true, "super": true, "self": true,
	"Self": true, "true": true, "false": true, "any": true, "some": true,
	"async": true, "await": true,

	"convenience": true, "dynamic": true, "final": true, "indirect": true,
	"lazy": true, "mutating": true, "nonmutating": true, "optional": true,
	"override": true, "required": true, "unowned": true, "weak": true,
	"willSet": true, "didSet": true, "get": true, "set": true,
}

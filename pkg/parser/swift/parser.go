// Package swift provides the tree builder for goswiftlint: a tokenizer and a
// lightweight structural parser that turn Swift source into a lossless,
// trivia-preserving swast tree. The parser recognizes declarations and their
// clauses; expressions and statement interiors are kept as opaque spans.
package swift

import (
	"context"
	"fmt"

	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// Parser builds swast.FileSnapshot values from Swift source text.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse tokenizes and structures content into a FileSnapshot. The returned
// snapshot satisfies the round-trip invariant: serializing its token stream
// reproduces content byte for byte.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*swast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	tokens, err := Tokenize(content)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Path = path
		}
		return nil, err
	}

	if !swast.ValidateTokens(tokens, len(content)) {
		return nil, &ParseError{Path: path, Message: "token stream does not cover source"}
	}

	file := swast.NewFileSnapshot(path, content)
	file.Tokens = tokens

	tp := &treeParser{file: file, tokens: tokens}
	root := tp.parseSourceFile()
	if tp.err != nil {
		tp.err.Path = path
		return nil, tp.err
	}
	file.Root = root

	return file, nil
}

// treeParser is a recursive-descent parser over the token stream.
type treeParser struct {
	file   *swast.FileSnapshot
	tokens []swast.Token
	pos    int
	err    *ParseError
}

func (t *treeParser) cur() swast.Token {
	if t.pos >= len(t.tokens) {
		return swast.Token{Kind: swast.TokEOF}
	}
	return t.tokens[t.pos]
}

func (t *treeParser) peek(n int) swast.Token {
	if t.pos+n >= len(t.tokens) {
		return swast.Token{Kind: swast.TokEOF}
	}
	return t.tokens[t.pos+n]
}

func (t *treeParser) atEOF() bool {
	return t.cur().Kind == swast.TokEOF
}

func (t *treeParser) node(kind swast.NodeKind, first, last int) *swast.Node {
	return &swast.Node{
		Kind:       kind,
		FirstToken: first,
		LastToken:  last,
		File:       t.file,
	}
}

func (t *treeParser) parseSourceFile() *swast.Node {
	root := t.node(swast.KindSourceFile, 0, len(t.tokens)-1)
	for !t.atEOF() && t.err == nil {
		root.AppendChild(t.parseDecl())
	}
	return root
}

// parseDecl parses one declaration or falls back to an opaque statement.
func (t *treeParser) parseDecl() *swast.Node {
	start := t.pos
	t.skipModifiers()

	tok := t.cur()
	if tok.Kind != swast.TokKeyword {
		return t.parseStatement(start)
	}

	switch tok.Text {
	case "import":
		return t.parseLineDecl(swast.KindImportDecl, start)
	case "typealias", "associatedtype":
		return t.parseLineDecl(swast.KindTypealiasDecl, start)
	case "var", "let":
		return t.parseVariableDecl(start)
	case "func", "init", "deinit", "subscript":
		return t.parseFunctionDecl(start)
	case "class":
		return t.parseNominalDecl(swast.KindClassDecl, start)
	case "struct":
		return t.parseNominalDecl(swast.KindStructDecl, start)
	case "enum":
		return t.parseNominalDecl(swast.KindEnumDecl, start)
	case "protocol":
		return t.parseNominalDecl(swast.KindProtocolDecl, start)
	case "actor":
		return t.parseNominalDecl(swast.KindActorDecl, start)
	case "extension":
		return t.parseNominalDecl(swast.KindExtensionDecl, start)
	default:
		return t.parseStatement(start)
	}
}

// skipModifiers consumes attributes and declaration modifiers, leaving the
// introducer keyword (or whatever follows) current.
func (t *treeParser) skipModifiers() {
	for {
		tok := t.cur()
		switch {
		case tok.Kind == swast.TokAttribute:
			t.pos++
			if t.cur().Kind == swast.TokLeftParen {
				t.consumeBalanced(swast.TokLeftParen, swast.TokRightParen)
			}
		case tok.Kind == swast.TokKeyword && declModifiers[tok.Text]:
			t.pos++
			// Modifier arguments such as private(set).
			if t.cur().Kind == swast.TokLeftParen {
				t.consumeBalanced(swast.TokLeftParen, swast.TokRightParen)
			}
		case tok.IsKeyword("class") && t.peek(1).Kind == swast.TokKeyword &&
			classMemberIntro[t.peek(1).Text]:
			// 'class func', 'class var': class acts as a modifier here.
			t.pos++
		default:
			return
		}
	}
}

// parseLineDecl consumes a declaration that spans to the end of the current
// statement (import, typealias).
func (t *treeParser) parseLineDecl(kind swast.NodeKind, start int) *swast.Node {
	t.pos++ // introducer keyword
	for !t.atEOF() {
		tok := t.cur()
		if tok.Kind == swast.TokRightBrace || tok.Leading.ContainsNewline() {
			break
		}
		t.pos++
		if tok.Kind == swast.TokSemicolon {
			break
		}
	}
	return t.node(kind, start, t.lastConsumed(start))
}

// parseVariableDecl parses a var/let binding list with optional type
// annotation, initializer, and accessor block.
func (t *treeParser) parseVariableDecl(start int) *swast.Node {
	n := t.node(swast.KindVariableDecl, start, start)
	t.pos++ // var/let

	t.consumePattern()

	for !t.atEOF() {
		switch t.cur().Kind {
		case swast.TokColon:
			n.AppendChild(t.parseTypeAnnotation())
			continue
		case swast.TokEquals:
			n.AppendChild(t.parseInitializerClause())
			continue
		case swast.TokComma:
			t.pos++
			t.consumePattern()
			continue
		}
		break
	}

	// Accessor block: 'var x: Int { get { ... } }'.
	if t.cur().Kind == swast.TokLeftBrace {
		n.AppendChild(t.parseBraceBlock(swast.KindCodeBlock, false))
	}

	n.LastToken = t.lastConsumed(start)
	return n
}

// consumePattern consumes a binding pattern: an identifier or a balanced
// tuple pattern.
func (t *treeParser) consumePattern() {
	switch t.cur().Kind {
	case swast.TokLeftParen:
		t.consumeBalanced(swast.TokLeftParen, swast.TokRightParen)
	case swast.TokIdentifier, swast.TokKeyword:
		t.pos++
	}
}

func (t *treeParser) parseTypeAnnotation() *swast.Node {
	first := t.pos
	t.pos++ // ':'
	t.consumeType()
	return t.node(swast.KindTypeAnnotation, first, t.lastConsumed(first))
}

func (t *treeParser) parseInitializerClause() *swast.Node {
	first := t.pos
	t.pos++ // '='

	depth := 0
	for !t.atEOF() {
		tok := t.cur()
		if depth == 0 {
			if tok.Kind == swast.TokRightBrace ||
				tok.Kind == swast.TokComma ||
				tok.Kind == swast.TokSemicolon ||
				tok.Leading.ContainsNewline() {
				break
			}
		}
		switch tok.Kind {
		case swast.TokLeftBrace:
			t.consumeBalanced(swast.TokLeftBrace, swast.TokRightBrace)
			continue
		case swast.TokLeftParen, swast.TokLeftBracket:
			depth++
		case swast.TokRightParen, swast.TokRightBracket:
			if depth == 0 {
				return t.node(swast.KindInitializerClause, first, t.lastConsumed(first))
			}
			depth--
		}
		t.pos++
	}
	return t.node(swast.KindInitializerClause, first, t.lastConsumed(first))
}

// consumeType consumes a type expression: identifiers, member access,
// generic arguments, tuples, arrays, optionals, function arrows, and
// composition.
func (t *treeParser) consumeType() {
	angleDepth := 0
	groupDepth := 0
	consumed := 0

	for !t.atEOF() {
		tok := t.cur()

		if angleDepth == 0 && groupDepth == 0 && consumed > 0 && tok.Leading.ContainsNewline() {
			return
		}

		switch tok.Kind {
		case swast.TokIdentifier, swast.TokPeriod, swast.TokArrow:
			t.pos++
		case swast.TokKeyword:
			if !typeKeywords[tok.Text] {
				return
			}
			t.pos++
		case swast.TokLeftParen, swast.TokLeftBracket:
			groupDepth++
			t.pos++
		case swast.TokRightParen, swast.TokRightBracket:
			if groupDepth == 0 {
				return
			}
			groupDepth--
			t.pos++
		case swast.TokColon, swast.TokComma:
			// Tuple labels and elements, generic argument separators.
			if groupDepth == 0 && angleDepth == 0 {
				return
			}
			t.pos++
		case swast.TokOperator:
			if isAngleRun(tok.Text) {
				for _, c := range tok.Text {
					if c == '<' {
						angleDepth++
					} else if angleDepth > 0 {
						angleDepth--
					}
				}
				t.pos++
				continue
			}
			if tok.Text == "?" || tok.Text == "!" || tok.Text == "&" || angleDepth > 0 {
				t.pos++
				continue
			}
			return
		default:
			return
		}
		consumed++
	}
}

// parseFunctionDecl parses func/init/deinit/subscript through its signature
// and optional body.
func (t *treeParser) parseFunctionDecl(start int) *swast.Node {
	n := t.node(swast.KindFunctionDecl, start, start)
	t.pos++ // introducer keyword

	// Function name or operator being defined.
	switch t.cur().Kind {
	case swast.TokIdentifier, swast.TokOperator:
		t.pos++
	case swast.TokKeyword:
		// init? / init! lex the name as the introducer already; nothing to do.
	}
	if t.cur().Kind == swast.TokOperator && isAngleRun(t.cur().Text) {
		t.consumeAngles()
	}
	if t.cur().Kind == swast.TokOperator && (t.cur().Text == "?" || t.cur().Text == "!") {
		t.pos++ // failable init marker
	}

	if t.cur().Kind == swast.TokLeftParen {
		t.consumeBalanced(swast.TokLeftParen, swast.TokRightParen)
	}

	for t.cur().Kind == swast.TokKeyword && effectKeywords[t.cur().Text] {
		t.pos++
	}

	if t.cur().Kind == swast.TokArrow {
		t.pos++
		t.consumeType()
	}

	if t.cur().IsKeyword("where") {
		t.consumeWhereClause()
	}

	if t.cur().Kind == swast.TokLeftBrace {
		n.AppendChild(t.parseBraceBlock(swast.KindCodeBlock, true))
	}

	n.LastToken = t.lastConsumed(start)
	return n
}

// parseNominalDecl parses class/struct/enum/protocol/actor/extension
// declarations, recursing into the member block.
func (t *treeParser) parseNominalDecl(kind swast.NodeKind, start int) *swast.Node {
	n := t.node(kind, start, start)
	t.pos++ // introducer keyword

	// Name, possibly qualified (extension Foo.Bar).
	for {
		tok := t.cur()
		if tok.Kind == swast.TokIdentifier || tok.Kind == swast.TokPeriod {
			t.pos++
			continue
		}
		break
	}

	if t.cur().Kind == swast.TokOperator && isAngleRun(t.cur().Text) {
		t.consumeAngles()
	}

	// Inheritance clause.
	if t.cur().Kind == swast.TokColon {
		t.pos++
		t.consumeType()
		for t.cur().Kind == swast.TokComma {
			t.pos++
			t.consumeType()
		}
	}

	if t.cur().IsKeyword("where") {
		t.consumeWhereClause()
	}

	if t.cur().Kind == swast.TokLeftBrace {
		n.AppendChild(t.parseBraceBlock(swast.KindMemberBlock, true))
	}

	n.LastToken = t.lastConsumed(start)
	return n
}

// parseBraceBlock parses '{ ... }'. When recurse is true the interior is
// parsed as a declaration list; otherwise it is consumed as an opaque
// balanced span.
func (t *treeParser) parseBraceBlock(kind swast.NodeKind, recurse bool) *swast.Node {
	first := t.pos

	if !recurse {
		t.consumeBalanced(swast.TokLeftBrace, swast.TokRightBrace)
		return t.node(kind, first, t.lastConsumed(first))
	}

	n := t.node(kind, first, first)
	t.pos++ // '{'
	for !t.atEOF() && t.cur().Kind != swast.TokRightBrace && t.err == nil {
		n.AppendChild(t.parseDecl())
	}
	if t.atEOF() {
		t.err = &ParseError{
			Offset:  t.tokens[first].TextStart(),
			Message: "unbalanced braces",
		}
	} else {
		t.pos++ // '}'
	}
	n.LastToken = t.lastConsumed(first)
	return n
}

// parseStatement consumes an opaque statement: tokens up to the next
// statement boundary, with nested delimiters kept balanced.
func (t *treeParser) parseStatement(start int) *swast.Node {
	depth := 0
	firstIteration := t.pos == start

	for !t.atEOF() {
		tok := t.cur()

		if !firstIteration && depth == 0 {
			if tok.Kind == swast.TokRightBrace || tok.Leading.ContainsNewline() {
				break
			}
		}
		firstIteration = false

		switch tok.Kind {
		case swast.TokLeftBrace:
			t.consumeBalanced(swast.TokLeftBrace, swast.TokRightBrace)
			continue
		case swast.TokLeftParen, swast.TokLeftBracket:
			depth++
		case swast.TokRightParen, swast.TokRightBracket:
			if depth > 0 {
				depth--
			}
		case swast.TokSemicolon:
			t.pos++
			return t.node(swast.KindStatement, start, t.lastConsumed(start))
		case swast.TokRightBrace:
			// Stray closer on the first token: consume it so the parse
			// always advances.
			t.pos++
			return t.node(swast.KindStatement, start, t.lastConsumed(start))
		}
		t.pos++
	}

	return t.node(swast.KindStatement, start, t.lastConsumed(start))
}

// consumeBalanced consumes from an opening delimiter through its matching
// closer, tolerating nested pairs of the same kind.
func (t *treeParser) consumeBalanced(open, close swast.TokenKind) {
	if t.cur().Kind != open {
		return
	}
	openOffset := t.cur().TextStart()
	depth := 0
	for !t.atEOF() {
		switch t.cur().Kind {
		case open:
			depth++
		case close:
			depth--
		}
		t.pos++
		if depth == 0 {
			return
		}
	}
	if open == swast.TokLeftBrace {
		t.err = &ParseError{Offset: openOffset, Message: "unbalanced braces"}
	}
}

// consumeAngles consumes a generic parameter/argument clause.
func (t *treeParser) consumeAngles() {
	depth := 0
	for !t.atEOF() {
		tok := t.cur()
		if tok.Kind == swast.TokOperator && isAngleRun(tok.Text) {
			for _, c := range tok.Text {
				if c == '<' {
					depth++
				} else if depth > 0 {
					depth--
				}
			}
			t.pos++
			if depth == 0 {
				return
			}
			continue
		}
		if tok.Kind == swast.TokLeftBrace || tok.Kind == swast.TokEOF {
			return
		}
		t.pos++
	}
}

func (t *treeParser) consumeWhereClause() {
	t.pos++ // 'where'
	for !t.atEOF() {
		tok := t.cur()
		if tok.Kind == swast.TokLeftBrace || tok.Kind == swast.TokRightBrace ||
			tok.Leading.ContainsNewline() {
			return
		}
		t.pos++
	}
}

// lastConsumed returns the index of the last consumed token, never less
// than start.
func (t *treeParser) lastConsumed(start int) int {
	if t.pos-1 < start {
		return start
	}
	return t.pos - 1
}

func isAngleRun(text string) bool {
	if text == "" {
		return false
	}
	for _, c := range text {
		if c != '<' && c != '>' {
			return false
		}
	}
	return true
}

// declModifiers are keywords consumed before a declaration introducer.
var declModifiers = map[string]bool{
	"public": true, "private": true, "fileprivate": true, "internal": true,
	"open": true, "static": true, "final": true, "override": true,
	"lazy": true, "weak": true, "unowned": true, "mutating": true,
	"nonmutating": true, "convenience": true, "required": true,
	"dynamic": true, "indirect": true, "optional": true,
}

// classMemberIntro are introducers that may follow 'class' used as a
// modifier.
var classMemberIntro = map[string]bool{
	"func": true, "var": true, "let": true, "subscript": true,
}

// typeKeywords may appear inside type expressions.
var typeKeywords = map[string]bool{
	"some": true, "any": true, "Self": true, "inout": true,
	"throws": true, "rethrows": true, "async": true,
}

// effectKeywords may follow a function parameter clause.
var effectKeywords = map[string]bool{
	"throws": true, "rethrows": true, "async": true,
}

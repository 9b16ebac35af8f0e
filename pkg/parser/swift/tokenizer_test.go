package swift_test

import (
	"errors"
	"strings"
	"testing"

	swiftparser "github.com/yaklabco/goswiftlint/pkg/parser/swift"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// tokenTexts returns the text of every non-EOF token.
func tokenTexts(tokens []swast.Token) []string {
	var out []string
	for _, tok := range tokens {
		if tok.Kind == swast.TokEOF {
			continue
		}
		out = append(out, tok.Text)
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []swast.TokenKind
	}{
		{
			name:   "variable declaration",
			source: "var x: Int = 42",
			want: []swast.TokenKind{
				swast.TokKeyword, swast.TokIdentifier, swast.TokColon,
				swast.TokIdentifier, swast.TokEquals, swast.TokIntegerLiteral,
			},
		},
		{
			name:   "function signature",
			source: "func f(a: Int) -> String",
			want: []swast.TokenKind{
				swast.TokKeyword, swast.TokIdentifier, swast.TokLeftParen,
				swast.TokIdentifier, swast.TokColon, swast.TokIdentifier,
				swast.TokRightParen, swast.TokArrow, swast.TokIdentifier,
			},
		},
		{
			name:   "literals",
			source: `"hi" 3.14 0xFF`,
			want: []swast.TokenKind{
				swast.TokStringLiteral, swast.TokFloatLiteral, swast.TokIntegerLiteral,
			},
		},
		{
			name:   "attribute and directive",
			source: "@objc #available",
			want:   []swast.TokenKind{swast.TokAttribute, swast.TokPoundDirective},
		},
		{
			name:   "member access",
			source: "foo.bar",
			want:   []swast.TokenKind{swast.TokIdentifier, swast.TokPeriod, swast.TokIdentifier},
		},
		{
			name:   "range operator stays whole",
			source: "0..<10",
			want:   []swast.TokenKind{swast.TokIntegerLiteral, swast.TokOperator, swast.TokIntegerLiteral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := swiftparser.Tokenize([]byte(tt.source))
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}

			var kinds []swast.TokenKind
			for _, tok := range tokens {
				if tok.Kind == swast.TokEOF {
					continue
				}
				kinds = append(kinds, tok.Kind)
			}

			if len(kinds) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(kinds), tokenTexts(tokens), len(tt.want))
			}
			for i := range kinds {
				if kinds[i] != tt.want[i] {
					t.Errorf("token %d: got kind %v, want %v", i, kinds[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeTriviaAttachment(t *testing.T) {
	t.Parallel()

	tokens, err := swiftparser.Tokenize([]byte("let x = 1  \n// note\nlet y = 2\n"))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	// The trailing spaces after "1" attach as trailing trivia of the literal;
	// the newline and whole-line comment attach as leading trivia of the
	// second "let".
	var one, secondLet swast.Token
	for i, tok := range tokens {
		if tok.Text == "1" {
			one = tok
		}
		if tok.Text == "let" && i > 0 {
			secondLet = tok
		}
	}

	if got := one.Trailing.String(); got != "  " {
		t.Errorf("trailing trivia of literal = %q, want two spaces", got)
	}
	if !secondLet.Leading.ContainsNewline() {
		t.Error("second let should have newline in leading trivia")
	}
	if comments := secondLet.Leading.Comments(); len(comments) != 1 || comments[0].Text != "// note" {
		t.Errorf("second let leading comments = %+v", comments)
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"let s = \"a \\\"quoted\\\" part\"\n",
		"let t = \"interp \\(a + b(c)) end\"\n",
		"let m = \"\"\"\nmulti\nline\n\"\"\"\n",
		"/* outer /* nested */ still outer */ let x = 1\n",
		"let id = `class`\n",
		"let big = 1_000_000\nlet f = 6.02e23\n",
	}

	for _, src := range sources {
		tokens, err := swiftparser.Tokenize([]byte(src))
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", src, err)
		}
		if !swast.ValidateTokens(tokens, len(src)) {
			t.Errorf("token stream for %q does not cover source", src)
		}

		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.Leading.String())
			sb.WriteString(tok.Text)
			sb.WriteString(tok.Trailing.String())
		}
		if sb.String() != src {
			t.Errorf("round trip mismatch:\n got: %q\nwant: %q", sb.String(), src)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{"unterminated string", `let s = "never closed`},
		{"newline in string", "let s = \"broken\nlet t = 1"},
		{"unterminated block comment", "/* never closed\nlet x = 1"},
		{"unterminated multiline string", "let s = \"\"\"\nno end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := swiftparser.Tokenize([]byte(tt.source))
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var perr *swiftparser.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestTokenizeDocComments(t *testing.T) {
	t.Parallel()

	tokens, err := swiftparser.Tokenize([]byte("/// Doc line\n/** Doc block */\nfunc f() {}\n"))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var fn swast.Token
	for _, tok := range tokens {
		if tok.Text == "func" {
			fn = tok
		}
	}

	comments := fn.Leading.Comments()
	if len(comments) != 2 {
		t.Fatalf("got %d leading comments, want 2", len(comments))
	}
	if comments[0].Kind != swast.TriviaDocLineComment {
		t.Errorf("first comment kind = %v, want doc line", comments[0].Kind)
	}
	if comments[1].Kind != swast.TriviaDocBlockComment {
		t.Errorf("second comment kind = %v, want doc block", comments[1].Kind)
	}
}

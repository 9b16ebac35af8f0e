package swast_test

import (
	"testing"

	"github.com/yaklabco/goswiftlint/pkg/swast"
)

func TestTokenOffsets(t *testing.T) {
	t.Parallel()

	tok := swast.Token{
		Kind:     swast.TokKeyword,
		Text:     "var",
		Leading:  swast.Trivia{{Kind: swast.TriviaNewlines, Text: "\n"}, {Kind: swast.TriviaSpaces, Text: "    "}},
		Trailing: swast.Trivia{{Kind: swast.TriviaSpaces, Text: " "}},
		Offset:   10,
	}

	if got := tok.TextStart(); got != 15 {
		t.Errorf("TextStart = %d, want 15", got)
	}
	if got := tok.TextEnd(); got != 18 {
		t.Errorf("TextEnd = %d, want 18", got)
	}
	if got := tok.FullEnd(); got != 19 {
		t.Errorf("FullEnd = %d, want 19", got)
	}
	if got := tok.FullWidth(); got != 9 {
		t.Errorf("FullWidth = %d, want 9", got)
	}
}

func TestTriviaString(t *testing.T) {
	t.Parallel()

	trivia := swast.Trivia{
		{Kind: swast.TriviaSpaces, Text: "  "},
		{Kind: swast.TriviaLineComment, Text: "// note"},
		{Kind: swast.TriviaNewlines, Text: "\n"},
	}

	if got := trivia.String(); got != "  // note\n" {
		t.Errorf("String = %q", got)
	}
	if got := trivia.Len(); got != 10 {
		t.Errorf("Len = %d, want 10", got)
	}
	if !trivia.ContainsNewline() {
		t.Error("ContainsNewline should be true")
	}
	if comments := trivia.Comments(); len(comments) != 1 || comments[0].Text != "// note" {
		t.Errorf("Comments = %+v", comments)
	}
}

func TestTriviaPieceIsComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind swast.TriviaKind
		want bool
	}{
		{swast.TriviaSpaces, false},
		{swast.TriviaTabs, false},
		{swast.TriviaNewlines, false},
		{swast.TriviaLineComment, true},
		{swast.TriviaBlockComment, true},
		{swast.TriviaDocLineComment, true},
		{swast.TriviaDocBlockComment, true},
	}

	for _, tt := range tests {
		piece := swast.TriviaPiece{Kind: tt.kind}
		if piece.IsComment() != tt.want {
			t.Errorf("kind %d: IsComment = %v, want %v", tt.kind, piece.IsComment(), tt.want)
		}
	}
}

func TestValidateTokens(t *testing.T) {
	t.Parallel()

	valid := []swast.Token{
		{Kind: swast.TokKeyword, Text: "let", Trailing: swast.Trivia{{Kind: swast.TriviaSpaces, Text: " "}}, Offset: 0},
		{Kind: swast.TokIdentifier, Text: "x", Offset: 4},
		{Kind: swast.TokEOF, Leading: swast.Trivia{{Kind: swast.TriviaNewlines, Text: "\n"}}, Offset: 5},
	}
	if !swast.ValidateTokens(valid, 6) {
		t.Error("valid stream rejected")
	}

	// Gap between tokens.
	gapped := []swast.Token{
		{Kind: swast.TokKeyword, Text: "let", Offset: 0},
		{Kind: swast.TokEOF, Offset: 5},
	}
	if swast.ValidateTokens(gapped, 5) {
		t.Error("gapped stream accepted")
	}

	// Missing EOF terminator.
	noEOF := []swast.Token{
		{Kind: swast.TokKeyword, Text: "let", Offset: 0},
	}
	if swast.ValidateTokens(noEOF, 3) {
		t.Error("stream without EOF accepted")
	}

	if !swast.ValidateTokens(nil, 0) {
		t.Error("empty stream for empty content rejected")
	}
	if swast.ValidateTokens(nil, 1) {
		t.Error("empty stream for non-empty content accepted")
	}
}

func TestIsKeyword(t *testing.T) {
	t.Parallel()

	kw := swast.Token{Kind: swast.TokKeyword, Text: "var"}
	if !kw.IsKeyword("var") {
		t.Error("IsKeyword(var) should be true")
	}
	if kw.IsKeyword("let") {
		t.Error("IsKeyword(let) should be false")
	}

	ident := swast.Token{Kind: swast.TokIdentifier, Text: "var"}
	if ident.IsKeyword("var") {
		t.Error("identifier should not match as keyword")
	}
}

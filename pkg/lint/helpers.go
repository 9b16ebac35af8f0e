package lint

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// Line-oriented helpers shared by the whitespace and length rules. They
// operate on the snapshot's line table so rules never re-split content.

// LineText returns the text of a 1-based line without its newline.
func LineText(file *swast.FileSnapshot, line int) string {
	return string(file.LineContent(line))
}

// IsBlankLine returns true if the line contains only spaces and tabs.
func IsBlankLine(file *swast.FileSnapshot, line int) bool {
	return strings.TrimRight(LineText(file, line), " \t") == ""
}

// LineLength returns the length of a line in runes, excluding the newline.
func LineLength(file *swast.FileSnapshot, line int) int {
	return utf8.RuneCountInString(LineText(file, line))
}

// TrailingWhitespaceRange returns the byte range of trailing spaces and
// tabs on a line, and whether any exist. The range excludes the newline.
func TrailingWhitespaceRange(file *swast.FileSnapshot, line int) (swast.SourceRange, bool) {
	text := LineText(file, line)
	trimmed := strings.TrimRight(text, " \t")
	if len(trimmed) == len(text) {
		return swast.SourceRange{}, false
	}
	start := file.Lines[line-1].StartOffset
	return swast.SourceRange{
		StartOffset: start + len(trimmed),
		EndOffset:   start + len(text),
	}, true
}

// accessModifiers are the Swift access-control keywords that may precede a
// declaration.
var accessModifiers = map[string]bool{
	"open":        true,
	"public":      true,
	"internal":    true,
	"fileprivate": true,
	"private":     true,
	"package":     true,
}

// AccessModifier returns the access-control keyword written before the
// node's introducer keyword, if any. It scans the node's tokens up to the
// first declaration keyword, so attributes and other modifiers in between
// do not hide it.
func AccessModifier(node *swast.Node) (string, bool) {
	for _, tok := range node.Tokens() {
		if tok.Kind == swast.TokKeyword && accessModifiers[tok.Text] {
			return tok.Text, true
		}
		if tok.Kind == swast.TokKeyword && declIntroducers[tok.Text] {
			return "", false
		}
	}
	return "", false
}

// declIntroducers are the keywords that begin a declaration body, ending
// the modifier prefix.
var declIntroducers = map[string]bool{
	"class": true, "struct": true, "enum": true, "protocol": true,
	"actor": true, "extension": true, "func": true, "var": true,
	"let": true, "init": true, "deinit": true, "subscript": true,
	"typealias": true, "import": true,
}

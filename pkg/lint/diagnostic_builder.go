package lint

import (
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// DiagnosticBuilder provides a fluent API for constructing diagnostics with
// positions resolved against the file being linted.
type DiagnosticBuilder struct {
	diag Diagnostic
	file *swast.FileSnapshot
}

// NewDiagnostic creates a builder for the given rule against the context's
// file. Severity is left blank; the engine stamps the resolved severity.
func NewDiagnostic(rule Rule, ctx *RuleContext) *DiagnosticBuilder {
	b := &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:   rule.ID(),
			RuleName: rule.Name(),
		},
		file: ctx.File,
	}
	if ctx.File != nil {
		b.diag.FilePath = ctx.File.Path
	}
	return b
}

// Message sets the diagnostic message.
func (b *DiagnosticBuilder) Message(msg string) *DiagnosticBuilder {
	b.diag.Message = msg
	return b
}

// AtOffset anchors the diagnostic at a byte offset, resolving line and
// column from the file's line table.
func (b *DiagnosticBuilder) AtOffset(offset int) *DiagnosticBuilder {
	b.diag.Offset = offset
	if b.file != nil {
		b.diag.Line, b.diag.Column = b.file.LineAt(offset)
	}
	return b
}

// AtNode anchors the diagnostic at the node's canonical position: the start
// of its first token's text, past any leading trivia.
func (b *DiagnosticBuilder) AtNode(node *swast.Node) *DiagnosticBuilder {
	return b.AtOffset(node.Range().StartOffset)
}

// AtToken anchors the diagnostic at a token's text start.
func (b *DiagnosticBuilder) AtToken(tok swast.Token) *DiagnosticBuilder {
	return b.AtOffset(tok.TextStart())
}

// AtLine anchors the diagnostic at the start of a 1-based line.
func (b *DiagnosticBuilder) AtLine(line int) *DiagnosticBuilder {
	b.diag.Line = line
	b.diag.Column = 1
	if b.file != nil && line >= 1 && line <= b.file.LineCount() {
		b.diag.Offset = b.file.Lines[line-1].StartOffset
	}
	return b
}

// Column overrides the 1-based column, keeping the resolved line. The
// offset moves with it so suppression checks stay aligned.
func (b *DiagnosticBuilder) Column(col int) *DiagnosticBuilder {
	if col > b.diag.Column {
		b.diag.Offset += col - b.diag.Column
	}
	b.diag.Column = col
	return b
}

// Build returns the constructed diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}

package swast

import "strings"

// RemovalSplice computes the byte range and replacement text that delete a
// node from the source while keeping the surrounding formatting intact.
//
// The removed range covers the node's tokens including their trivia. The
// replacement reattaches the node's trailing trivia (or a single space when
// there is none) as the leading trivia of the next retained token, so that
// removing a construct never merges adjacent tokens and never leaves doubled
// whitespace. Comments found in the node's leading or interior trivia are
// preserved in the replacement, never dropped.
func RemovalSplice(n *Node) (start, end int, replacement string) {
	tokens := n.Tokens()
	if len(tokens) == 0 {
		return 0, 0, ""
	}

	first := tokens[0]
	last := tokens[len(tokens)-1]

	start = first.Offset
	end = last.FullEnd()

	var out strings.Builder

	// Preserve comments from the leading and interior trivia. Trailing
	// trivia of the last token is kept verbatim below, so its comments
	// survive on their own.
	writeComments(&out, first.Leading)
	for i := 1; i < len(tokens); i++ {
		writeComments(&out, tokens[i-1].Trailing)
		writeComments(&out, tokens[i].Leading)
	}

	trailing := last.Trailing.String()
	out.WriteString(trailing)

	replacement = out.String()

	// A node with no trailing trivia still needs to keep its neighbors
	// apart. Insert a single space unless the node starts the file or the
	// next retained byte is already separated.
	if replacement == "" && n.File != nil {
		if start > 0 && end < len(n.File.Content) && !isSeparator(n.File.Content[start-1]) {
			replacement = " "
		}
	}

	return start, end, replacement
}

// writeComments appends each comment piece of the trivia. Line comments are
// terminated with a newline so following tokens do not get swallowed.
func writeComments(out *strings.Builder, trivia Trivia) {
	for _, p := range trivia {
		if !p.IsComment() {
			continue
		}
		out.WriteString(p.Text)
		switch p.Kind {
		case TriviaLineComment, TriviaDocLineComment:
			out.WriteByte('\n')
		default:
			out.WriteByte(' ')
		}
	}
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '(', '[', '{', '.':
		return true
	default:
		return false
	}
}

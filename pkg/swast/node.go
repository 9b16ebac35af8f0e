package swast

//go:generate stringer -type=NodeKind -trimprefix=Kind

// NodeKind classifies the type of a syntax tree node.
type NodeKind uint16

// Node kinds for Swift declarations and structural clauses.
const (
	KindSourceFile NodeKind = iota

	// Declarations.
	KindImportDecl
	KindVariableDecl // var/let bindings
	KindFunctionDecl // func, init, deinit, subscript
	KindClassDecl
	KindStructDecl
	KindEnumDecl
	KindProtocolDecl
	KindActorDecl
	KindExtensionDecl
	KindTypealiasDecl

	// Structural clauses.
	KindMemberBlock       // '{ ... }' of a type or extension
	KindCodeBlock         // '{ ... }' of a function body
	KindTypeAnnotation    // ': Type'
	KindInitializerClause // '= expr'

	// Fallback for unrecognized content.
	KindStatement
)

// Node represents a single node in the syntax tree. Nodes form a tree with
// parent/child/sibling relationships and reference token spans in the
// containing FileSnapshot. Node spans are contiguous and non-overlapping in
// document order.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into FileSnapshot.Tokens).
	// FirstToken <= LastToken for non-empty nodes; both are -1 for
	// synthetic/degenerate nodes.
	FirstToken int
	LastToken  int

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot
}

// IsDecl returns true if this is a declaration node.
func (n *Node) IsDecl() bool {
	switch n.Kind {
	case KindImportDecl, KindVariableDecl, KindFunctionDecl, KindClassDecl,
		KindStructDecl, KindEnumDecl, KindProtocolDecl, KindActorDecl,
		KindExtensionDecl, KindTypealiasDecl:
		return true
	default:
		return false
	}
}

// IsTypeBody returns true for nodes that introduce a nested declaration scope.
func (n *Node) IsTypeBody() bool {
	switch n.Kind {
	case KindClassDecl, KindStructDecl, KindEnumDecl, KindProtocolDecl,
		KindActorDecl, KindExtensionDecl:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// ChildOfKind returns the first direct child of the given kind, or nil.
func (n *Node) ChildOfKind(kind NodeKind) *Node {
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// AppendChild links child as the last child of n. Used by tree builders;
// trees are treated as immutable once a snapshot is published.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.Prev = n.LastChild
	child.Next = nil
	if n.LastChild != nil {
		n.LastChild.Next = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// Tokens returns the token span of this node as a slice view.
func (n *Node) Tokens() []Token {
	if n.File == nil || n.FirstToken < 0 || n.LastToken < 0 {
		return nil
	}
	if n.FirstToken >= len(n.File.Tokens) || n.LastToken >= len(n.File.Tokens) {
		return nil
	}
	return n.File.Tokens[n.FirstToken : n.LastToken+1]
}

// KeywordToken returns the first keyword token in the node's span matching
// kw, searching only the node's own tokens. Returns the token index, or -1.
func (n *Node) KeywordToken(kw string) int {
	if n.File == nil || n.FirstToken < 0 {
		return -1
	}
	for i := n.FirstToken; i <= n.LastToken && i < len(n.File.Tokens); i++ {
		if n.File.Tokens[i].IsKeyword(kw) {
			return i
		}
	}
	return -1
}

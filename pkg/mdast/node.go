package mdast

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeSoftBreak
	NodeHardBreak
	NodeHTMLInline

	// Fallback for unrecognized content.
	NodeRaw
)

// Node represents a single node in the Markdown AST.
// Nodes form a tree structure with parent/child/sibling relationships;
// a node has at most one parent, and a parent exclusively owns its children.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Span is the byte range this node covers in the source content.
	// Both offsets are -1 for generated (synthetic) nodes.
	Span Span

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs

	// Ext holds extension-specific attributes (e.g., GFM task checkboxes).
	Ext map[string]any
}

// IsGenerated reports whether this node lacks a reliable mapping back to
// source text. A node is generated when it has no file reference or its
// span does not resolve inside the file content. Generated nodes must
// never be the subject of a diagnostic.
func (n *Node) IsGenerated() bool {
	if n == nil || n.File == nil {
		return true
	}
	if n.Span.Start < 0 || n.Span.End < n.Span.Start {
		return true
	}
	return n.Span.End > len(n.File.Content)
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeading, NodeList, NodeListItem,
		NodeBlockquote, NodeCodeBlock, NodeThematicBreak, NodeHTMLBlock:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case NodeText, NodeEmphasis, NodeStrong, NodeCodeSpan, NodeLink,
		NodeImage, NodeSoftBreak, NodeHardBreak, NodeHTMLInline:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Position returns the resolved line/column/offset range for this node.
// Returns the zero Position for generated nodes.
func (n *Node) Position() Position {
	if n.IsGenerated() {
		return Position{}
	}
	return Position{
		Start: n.File.PointAt(n.Span.Start),
		End:   n.File.PointAt(n.Span.End),
	}
}

// Text returns the source text covered by this node.
// Returns nil for generated nodes.
func (n *Node) Text() []byte {
	if n.IsGenerated() {
		return nil
	}
	return n.File.Content[n.Span.Start:n.Span.End]
}

// Ext keys written by the parser for GFM extension constructs.
const (
	ExtTaskCheckbox = "taskCheckbox"
	ExtTaskChecked  = "checked"
)

// TaskCheckbox reports whether this node is a GFM task list checkbox
// marker. ok is true only for checkbox nodes; checked reports the state
// of the box.
func (n *Node) TaskCheckbox() (checked, ok bool) {
	if n == nil || n.Ext == nil {
		return false, false
	}
	if is, _ := n.Ext[ExtTaskCheckbox].(bool); !is {
		return false, false
	}
	checked, _ = n.Ext[ExtTaskChecked].(bool)
	return checked, true
}

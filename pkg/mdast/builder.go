package mdast

// NewNode creates a detached node of the given kind. The node starts
// generated: no parent, children, or source span.
func NewNode(kind NodeKind) *Node {
	return &Node{
		Kind: kind,
		Span: NoSpan,
	}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return NewNode(NodeDocument)
}

// AppendChild attaches child as the last child of parent, detaching it
// from any previous parent first.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	detach(child)

	child.Parent = parent
	child.Prev = parent.LastChild
	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// RemoveChild detaches child from parent. A no-op when child does not
// belong to parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}
	detach(child)
}

// detach unlinks a node from its parent and siblings.
func detach(n *Node) {
	parent := n.Parent
	if parent == nil {
		return
	}

	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		parent.FirstChild = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		parent.LastChild = n.Prev
	}

	n.Parent = nil
	n.Prev = nil
	n.Next = nil
}

// SetSpan sets the source byte span for a node.
func SetSpan(n *Node, start, end int) {
	if n == nil {
		return
	}
	n.Span = Span{Start: start, End: end}
}

// SetFile points a node and all its descendants at their snapshot.
func SetFile(node *Node, file *FileSnapshot) {
	if node == nil {
		return
	}

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(node, func(child *Node) error {
		child.File = file
		return nil
	})
}

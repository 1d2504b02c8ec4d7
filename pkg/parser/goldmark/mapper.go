package goldmark

import (
	"github.com/tidydown/tidydown/pkg/mdast"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// mapper converts a goldmark AST into an mdast.Node tree.
type mapper struct {
	content []byte
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewDocument()
	m.mapChildren(gmDoc, doc)
	return doc
}

// mapChildren recursively maps all children of a goldmark node to mdast nodes.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if mdNode := m.mapNode(child); mdNode != nil {
			mdast.AppendChild(parent, mdNode)
		}
	}
}

// mapNode converts a single goldmark node to an mdast.Node.
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Node {
	var node *mdast.Node

	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Document:
		node = mdast.NewNode(mdast.NodeDocument)
		m.mapChildren(gmNode, node)

	case *ast.Heading:
		node = m.mapHeading(gmn)

	case *ast.Paragraph:
		node = mdast.NewNode(mdast.NodeParagraph)
		m.setBlockSpan(node, gmn)
		m.mapChildren(gmNode, node)

	case *ast.TextBlock:
		node = mdast.NewNode(mdast.NodeParagraph)
		m.setBlockSpan(node, gmn)
		m.mapChildren(gmNode, node)

	case *ast.List:
		node = m.mapList(gmn)

	case *ast.ListItem:
		node = mdast.NewNode(mdast.NodeListItem)
		m.mapChildren(gmNode, node)

	case *ast.Blockquote:
		node = mdast.NewNode(mdast.NodeBlockquote)
		m.mapChildren(gmNode, node)

	case *ast.FencedCodeBlock:
		node = m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		node = m.mapIndentedCodeBlock(gmn)

	case *ast.ThematicBreak:
		node = mdast.NewNode(mdast.NodeThematicBreak)

	case *ast.HTMLBlock:
		node = mdast.NewNode(mdast.NodeHTMLBlock)
		m.setBlockSpan(node, gmn)

	// Inline-level nodes.
	case *ast.Text:
		node = m.mapText(gmn)

	case *ast.Emphasis:
		node = m.mapEmphasis(gmn)

	case *ast.CodeSpan:
		node = m.mapCodeSpan(gmn)

	case *ast.Link:
		node = m.mapLink(gmn)

	case *ast.Image:
		node = m.mapImage(gmn)

	case *ast.AutoLink:
		node = m.mapAutoLink(gmn)

	case *ast.RawHTML:
		node = m.mapRawHTML(gmn)

	case *ast.String:
		node = m.mapString(gmn)

	// GFM extension nodes.
	case *east.TaskCheckBox:
		node = m.mapTaskCheckBox(gmn)

	case *east.Strikethrough:
		// The marker style is not preserved; no rule distinguishes
		// strikethrough from emphasis.
		node = mdast.NewNode(mdast.NodeEmphasis)
		m.mapChildren(gmNode, node)

	default:
		// Fallback for unknown node types (e.g., GFM tables).
		node = mdast.NewNode(mdast.NodeRaw)
		m.mapChildren(gmNode, node)
	}

	return node
}

// setBlockSpan assigns the span of a block node from its goldmark line segments.
func (m *mapper) setBlockSpan(node *mdast.Node, gmNode ast.Node) {
	lines := gmNode.Lines()
	if lines.Len() == 0 {
		return
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	mdast.SetSpan(node, first.Start, last.Stop)
}

// mapHeading converts a goldmark Heading to an mdast node.
// The span is widened to the start of the line so that ATX markers are
// covered, and the setext flag is detected from the marker character.
func (m *mapper) mapHeading(h *ast.Heading) *mdast.Node {
	node := mdast.NewNode(mdast.NodeHeading)
	node.Block = mdast.NewBlockAttrs().WithHeadingLevel(h.Level)

	lines := h.Lines()
	if lines.Len() > 0 {
		start := lineStartBefore(m.content, lines.At(0).Start)
		end := lines.At(lines.Len() - 1).Stop
		mdast.SetSpan(node, start, end)

		// ATX headings open with '#' after at most three spaces of indent.
		marker := start
		for marker < len(m.content) && m.content[marker] == ' ' {
			marker++
		}
		node.Block.WithSetext(marker >= len(m.content) || m.content[marker] != '#')
	}

	m.mapChildren(h, node)
	return node
}

// mapList converts a goldmark List to an mdast node.
func (m *mapper) mapList(list *ast.List) *mdast.Node {
	node := mdast.NewNode(mdast.NodeList)

	listAttrs := &mdast.ListAttrs{
		Ordered:     list.IsOrdered(),
		StartNumber: list.Start,
		Tight:       list.IsTight,
	}

	if !list.IsOrdered() {
		listAttrs.BulletMarker = string(list.Marker)
	} else {
		listAttrs.Delimiter = string(list.Marker)
	}

	node.Block = mdast.NewBlockAttrs().WithList(listAttrs)
	m.mapChildren(list, node)
	return node
}

// mapFencedCodeBlock converts a goldmark FencedCodeBlock to an mdast node.
// goldmark's line segments cover only the content between the fences, so
// the fence character and length are recovered from the line preceding the
// first content line.
func (m *mapper) mapFencedCodeBlock(codeBlock *ast.FencedCodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)

	info := ""
	if codeBlock.Info != nil {
		info = string(codeBlock.Info.Value(m.content))
	}

	fenceChar, fenceLength := byte('`'), 3
	lines := codeBlock.Lines()
	if lines.Len() > 0 {
		contentStart := lines.At(0).Start
		fenceChar, fenceLength = m.fenceBefore(contentStart)
		mdast.SetSpan(node, lineStartBefore(m.content, contentStart), lines.At(lines.Len()-1).Stop)
	} else if seg := codeBlock.Info; seg != nil {
		// Empty fenced block: anchor on the info segment's line.
		start := lineStartBefore(m.content, seg.Segment.Start)
		fenceChar, fenceLength = m.fenceAt(start)
		mdast.SetSpan(node, start, seg.Segment.Stop)
	}

	node.Block = mdast.NewBlockAttrs().WithCodeBlock(&mdast.CodeBlockAttrs{
		FenceChar:   fenceChar,
		FenceLength: fenceLength,
		Info:        info,
		Indented:    false,
	})
	return node
}

// fenceBefore examines the line preceding contentStart for fence characters.
func (m *mapper) fenceBefore(contentStart int) (byte, int) {
	lineStart := lineStartBefore(m.content, contentStart)
	if lineStart == 0 {
		return '`', 3
	}
	prevStart := lineStartBefore(m.content, lineStart-1)
	return m.fenceAt(prevStart)
}

// fenceAt extracts the fence character and run length starting at a line offset.
func (m *mapper) fenceAt(lineStart int) (byte, int) {
	pos := lineStart
	for pos < len(m.content) && (m.content[pos] == ' ' || m.content[pos] == '\t') {
		pos++
	}
	if pos >= len(m.content) {
		return '`', 3
	}

	fenceChar := m.content[pos]
	if fenceChar != '`' && fenceChar != '~' {
		return '`', 3
	}

	fenceLength := 0
	for pos < len(m.content) && m.content[pos] == fenceChar {
		fenceLength++
		pos++
	}
	if fenceLength < 3 {
		fenceLength = 3
	}
	return fenceChar, fenceLength
}

// mapIndentedCodeBlock converts a goldmark indented CodeBlock to an mdast node.
func (m *mapper) mapIndentedCodeBlock(codeBlock *ast.CodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)
	m.setBlockSpan(node, codeBlock)
	node.Block = mdast.NewBlockAttrs().WithCodeBlock(&mdast.CodeBlockAttrs{
		Indented: true,
	})
	return node
}

// mapText converts a goldmark Text node to an mdast node.
func (m *mapper) mapText(textNode *ast.Text) *mdast.Node {
	if textNode.SoftLineBreak() {
		return mdast.NewNode(mdast.NodeSoftBreak)
	}
	if textNode.HardLineBreak() {
		return mdast.NewNode(mdast.NodeHardBreak)
	}

	node := mdast.NewNode(mdast.NodeText)
	node.Inline = mdast.NewInlineAttrs().WithText(textNode.Value(m.content))
	mdast.SetSpan(node, textNode.Segment.Start, textNode.Segment.Stop)
	return node
}

// mapEmphasis converts a goldmark Emphasis node to an mdast node.
func (m *mapper) mapEmphasis(emphasis *ast.Emphasis) *mdast.Node {
	var node *mdast.Node

	if emphasis.Level == 2 {
		node = mdast.NewNode(mdast.NodeStrong)
		node.Inline = mdast.NewInlineAttrs().WithEmphasisLevel(2)
	} else {
		node = mdast.NewNode(mdast.NodeEmphasis)
		node.Inline = mdast.NewInlineAttrs().WithEmphasisLevel(1)
	}

	m.mapChildren(emphasis, node)
	return node
}

// mapCodeSpan converts a goldmark CodeSpan to an mdast node.
func (m *mapper) mapCodeSpan(codeSpan *ast.CodeSpan) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeSpan)

	var text []byte
	for child := codeSpan.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			text = append(text, textNode.Value(m.content)...)
		}
	}

	node.Inline = mdast.NewInlineAttrs().WithText(text)
	m.mapChildren(codeSpan, node)
	return node
}

// mapLink converts a goldmark Link to an mdast node.
func (m *mapper) mapLink(link *ast.Link) *mdast.Node {
	node := mdast.NewNode(mdast.NodeLink)
	node.Inline = mdast.NewInlineAttrs().WithLink(&mdast.LinkAttrs{
		Destination: string(link.Destination),
		Title:       string(link.Title),
	})
	m.mapChildren(link, node)
	return node
}

// mapImage converts a goldmark Image to an mdast node.
func (m *mapper) mapImage(img *ast.Image) *mdast.Node {
	node := mdast.NewNode(mdast.NodeImage)
	node.Inline = mdast.NewInlineAttrs().WithLink(&mdast.LinkAttrs{
		Destination: string(img.Destination),
		Title:       string(img.Title),
	})
	m.mapChildren(img, node)
	return node
}

// mapAutoLink converts a goldmark AutoLink to an mdast node.
func (m *mapper) mapAutoLink(al *ast.AutoLink) *mdast.Node {
	node := mdast.NewNode(mdast.NodeLink)
	node.Inline = mdast.NewInlineAttrs().WithLink(&mdast.LinkAttrs{
		Destination: string(al.URL(m.content)),
	})

	textNode := mdast.NewNode(mdast.NodeText)
	textNode.Inline = mdast.NewInlineAttrs().WithText(al.Label(m.content))
	mdast.AppendChild(node, textNode)

	return node
}

// mapRawHTML converts a goldmark RawHTML to an mdast node.
func (m *mapper) mapRawHTML(raw *ast.RawHTML) *mdast.Node {
	node := mdast.NewNode(mdast.NodeHTMLInline)

	segs := raw.Segments
	if segs.Len() > 0 {
		first := segs.At(0)
		last := segs.At(segs.Len() - 1)
		mdast.SetSpan(node, first.Start, last.Stop)
	}
	return node
}

// mapString converts a goldmark String node to an mdast text node.
func (m *mapper) mapString(s *ast.String) *mdast.Node {
	node := mdast.NewNode(mdast.NodeText)
	node.Inline = mdast.NewInlineAttrs().WithText(s.Value)
	return node
}

// mapTaskCheckBox converts a GFM TaskCheckBox to an mdast node.
// goldmark keeps no segment for the checkbox, but its inline parser only
// fires at the very start of the list item's text block, so the span is
// recovered from the block's first line: three marker bytes plus the
// space run goldmark consumed after the closing bracket.
func (m *mapper) mapTaskCheckBox(cb *east.TaskCheckBox) *mdast.Node {
	node := mdast.NewNode(mdast.NodeText)
	node.Ext = map[string]any{
		mdast.ExtTaskCheckbox: true,
		mdast.ExtTaskChecked:  cb.IsChecked,
	}

	parent := cb.Parent()
	if parent == nil || parent.Type() != ast.TypeBlock || parent.Lines().Len() == 0 {
		return node
	}
	start := parent.Lines().At(0).Start
	if start+3 > len(m.content) || m.content[start] != '[' {
		return node
	}
	end := start + 3
	for end < len(m.content) && (m.content[end] == ' ' || m.content[end] == '\t') {
		end++
	}
	mdast.SetSpan(node, start, end)
	return node
}

// lineStartBefore returns the offset of the start of the line containing offset.
func lineStartBefore(content []byte, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	for offset > 0 && content[offset-1] != '\n' {
		offset--
	}
	return offset
}

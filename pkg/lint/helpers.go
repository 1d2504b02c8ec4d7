package lint

import (
	"bytes"
	"strings"

	"github.com/tidydown/tidydown/pkg/mdast"
)

// Node accessor helpers. Node queries (headings, code blocks, and so on)
// live on RuleContext; these free functions only interpret single nodes.

// HeadingLevel returns the heading level for a heading node, or 0 if not a heading.
func HeadingLevel(n *mdast.Node) int {
	if n == nil || n.Kind != mdast.NodeHeading || n.Block == nil {
		return 0
	}
	return n.Block.HeadingLevel
}

// IsSetextHeading returns true if the heading uses setext (underline) syntax.
func IsSetextHeading(n *mdast.Node) bool {
	if n == nil || n.Kind != mdast.NodeHeading || n.Block == nil {
		return false
	}
	return n.Block.Setext
}

// IsFencedCodeBlock returns true if the node is a fenced code block.
func IsFencedCodeBlock(n *mdast.Node) bool {
	if n == nil || n.Kind != mdast.NodeCodeBlock || n.Block == nil || n.Block.CodeBlock == nil {
		return false
	}
	return !n.Block.CodeBlock.Indented
}

// IsIndentedCodeBlock returns true if the node is an indented code block.
func IsIndentedCodeBlock(n *mdast.Node) bool {
	if n == nil || n.Kind != mdast.NodeCodeBlock || n.Block == nil || n.Block.CodeBlock == nil {
		return false
	}
	return n.Block.CodeBlock.Indented
}

// CodeFenceChar returns the fence character ('`' or '~') for a fenced code
// block, or 0 for indented code blocks and non code block nodes.
func CodeFenceChar(n *mdast.Node) byte {
	if !IsFencedCodeBlock(n) {
		return 0
	}
	return n.Block.CodeBlock.FenceChar
}

// CodeBlockInfo returns the info string for a code block, or empty string.
func CodeBlockInfo(n *mdast.Node) string {
	if n == nil || n.Kind != mdast.NodeCodeBlock || n.Block == nil || n.Block.CodeBlock == nil {
		return ""
	}
	return n.Block.CodeBlock.Info
}

// HeadingText returns the rendered text content of a heading node.
func HeadingText(n *mdast.Node) string {
	if n == nil || n.Kind != mdast.NodeHeading {
		return ""
	}
	return extractTextContent(n)
}

// NormalizeHeadingText canonicalizes heading text for duplicate detection:
// case folded, leading and trailing whitespace removed, and interior runs
// of whitespace collapsed to a single space.
func NormalizeHeadingText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// extractTextContent extracts all text content from a node's descendants.
func extractTextContent(n *mdast.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	_ = mdast.Walk(n, func(node *mdast.Node) error { //nolint:errcheck // Walk visitor never returns error
		if (node.Kind == mdast.NodeText || node.Kind == mdast.NodeCodeSpan) && node.Inline != nil {
			buf.Write(node.Inline.Text)
		}
		return nil
	})
	return buf.String()
}

// LineContent returns the content of the specified 1-based line number.
// Returns nil if the line number is out of range.
func LineContent(file *mdast.FileSnapshot, lineNum int) []byte {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return nil
	}
	line := file.Lines[lineNum-1]
	return file.Content[line.StartOffset:line.NewlineStart]
}

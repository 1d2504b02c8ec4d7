// Package goldmark provides a Parser implementation using the goldmark library.
package goldmark

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidydown/tidydown/pkg/mdast"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser implements lint.Parser using goldmark.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts raw Markdown bytes into a fully-populated FileSnapshot.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a FileSnapshot shell with path, content, and lines.
//  3. Parses content with goldmark.
//  4. Builds the mdast.Node tree, assigning source spans as it goes.
//  5. Derives container spans from children where goldmark reports none.
//  6. Sets File back-references throughout the tree.
//
// Returns nil and an error if parsing fails or the context is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snapshot := &mdast.FileSnapshot{
		Path:    path,
		Content: copyContent(content),
		Lines:   mdast.BuildLines(content),
	}

	reader := text.NewReader(snapshot.Content)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	mapper := newMapper(snapshot.Content)
	snapshot.Root = mapper.mapDocument(gmDoc)
	if snapshot.Root == nil {
		return nil, errors.New("mapping produced no document root")
	}

	fillContainerSpans(snapshot.Root)
	snapshot.Root.Span = mdast.Span{Start: 0, End: len(snapshot.Content)}

	mdast.SetFile(snapshot.Root, snapshot)

	return snapshot, nil
}

// fillContainerSpans derives spans for container nodes that goldmark does
// not report directly (lists, list items, blockquotes, inline containers)
// by taking the union of their children's spans, post-order.
func fillContainerSpans(n *mdast.Node) {
	for child := n.FirstChild; child != nil; child = child.Next {
		fillContainerSpans(child)
	}

	if n.Span.Start >= 0 {
		return
	}

	start, end := -1, -1
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Span.Start < 0 {
			continue
		}
		if start < 0 || child.Span.Start < start {
			start = child.Span.Start
		}
		if child.Span.End > end {
			end = child.Span.End
		}
	}

	if start >= 0 {
		n.Span = mdast.Span{Start: start, End: end}
	}
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(
				extension.GFM,
			),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

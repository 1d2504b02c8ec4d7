package lint_test

import (
	"testing"

	"github.com/tidydown/tidydown/pkg/lint"
	"github.com/tidydown/tidydown/pkg/mdast"
)

func TestStyleTracker_Inferred(t *testing.T) {
	t.Parallel()

	tracker := lint.InferredStyle[string]()

	if _, pinned := tracker.Preferred(); pinned {
		t.Error("fresh inferred tracker should not be pinned")
	}

	// First observation pins and never mismatches.
	want, mismatch := tracker.Observe("fenced")
	if mismatch || want != "fenced" {
		t.Errorf("first Observe = (%q, %v), want (fenced, false)", want, mismatch)
	}

	// Matching observation.
	if _, mismatch := tracker.Observe("fenced"); mismatch {
		t.Error("matching observation reported mismatch")
	}

	// Deviating observation mismatches against the pinned style.
	want, mismatch = tracker.Observe("indented")
	if !mismatch || want != "fenced" {
		t.Errorf("deviating Observe = (%q, %v), want (fenced, true)", want, mismatch)
	}

	// The pin never moves.
	if preferred, pinned := tracker.Preferred(); !pinned || preferred != "fenced" {
		t.Errorf("Preferred = (%q, %v)", preferred, pinned)
	}
}

func TestStyleTracker_Fixed(t *testing.T) {
	t.Parallel()

	tracker := lint.FixedStyle("indented")

	// In fixed mode even the first observation is compared.
	want, mismatch := tracker.Observe("fenced")
	if !mismatch || want != "indented" {
		t.Errorf("first Observe = (%q, %v), want (indented, true)", want, mismatch)
	}

	if _, mismatch := tracker.Observe("indented"); mismatch {
		t.Error("matching observation reported mismatch")
	}
}

// spanNode builds a node with a valid span in the given file.
func spanNode(file *mdast.FileSnapshot, kind mdast.NodeKind, start, end int) *mdast.Node {
	return &mdast.Node{Kind: kind, File: file, Span: mdast.Span{Start: start, End: end}}
}

func TestInferStyles(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("0123456789"))

	styleByOffset := func(n *mdast.Node) (string, bool) {
		if n.Span.Start%2 == 0 {
			return "even", true
		}
		return "odd", true
	}

	tests := []struct {
		name     string
		nodes    []*mdast.Node
		tracker  lint.StyleTracker[string]
		extract  func(*mdast.Node) (string, bool)
		expected int
	}{
		{
			name:     "no nodes no verdicts",
			nodes:    nil,
			tracker:  lint.InferredStyle[string](),
			extract:  styleByOffset,
			expected: 0,
		},
		{
			name:     "single node inferred mode",
			nodes:    []*mdast.Node{spanNode(file, mdast.NodeCodeBlock, 0, 2)},
			tracker:  lint.InferredStyle[string](),
			extract:  styleByOffset,
			expected: 0,
		},
		{
			name: "first pins second deviates",
			nodes: []*mdast.Node{
				spanNode(file, mdast.NodeCodeBlock, 0, 2),
				spanNode(file, mdast.NodeCodeBlock, 1, 3),
			},
			tracker:  lint.InferredStyle[string](),
			extract:  styleByOffset,
			expected: 1,
		},
		{
			name: "fixed mode flags all deviations",
			nodes: []*mdast.Node{
				spanNode(file, mdast.NodeCodeBlock, 1, 3),
				spanNode(file, mdast.NodeCodeBlock, 3, 5),
			},
			tracker:  lint.FixedStyle("even"),
			extract:  styleByOffset,
			expected: 2,
		},
		{
			name: "generated nodes neither pin nor compare",
			nodes: []*mdast.Node{
				mdast.NewNode(mdast.NodeCodeBlock),
				spanNode(file, mdast.NodeCodeBlock, 1, 3),
				spanNode(file, mdast.NodeCodeBlock, 3, 5),
			},
			tracker:  lint.InferredStyle[string](),
			extract:  styleByOffset,
			expected: 0,
		},
		{
			name: "styleless nodes skipped",
			nodes: []*mdast.Node{
				spanNode(file, mdast.NodeCodeBlock, 0, 2),
				spanNode(file, mdast.NodeCodeBlock, 2, 4),
			},
			tracker: lint.InferredStyle[string](),
			extract: func(_ *mdast.Node) (string, bool) {
				return "", false
			},
			expected: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			verdicts := lint.InferStyles(testCase.nodes, testCase.tracker, testCase.extract)
			if len(verdicts) != testCase.expected {
				t.Errorf("got %d verdicts, want %d", len(verdicts), testCase.expected)
			}
		})
	}
}

func TestInferStyles_VerdictCarriesBothStyles(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("0123456789"))
	nodes := []*mdast.Node{
		spanNode(file, mdast.NodeCodeBlock, 0, 2),
		spanNode(file, mdast.NodeCodeBlock, 1, 3),
	}

	verdicts := lint.InferStyles(nodes, lint.InferredStyle[string](),
		func(n *mdast.Node) (string, bool) {
			if n.Span.Start == 0 {
				return "fenced", true
			}
			return "indented", true
		})

	if len(verdicts) != 1 {
		t.Fatalf("got %d verdicts, want 1", len(verdicts))
	}
	v := verdicts[0]
	if v.Want != "fenced" || v.Got != "indented" || v.Node != nodes[1] {
		t.Errorf("verdict = %+v", v)
	}
}

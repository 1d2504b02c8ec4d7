package lint

import "github.com/tidydown/tidydown/pkg/mdast"

// StyleVerdict reports a node whose observed style deviates from the
// preferred style, carrying both values for diagnostic construction.
type StyleVerdict[S comparable] struct {
	// Node is the deviating node (never generated).
	Node *mdast.Node

	// Want is the preferred style in effect when the node was observed.
	Want S

	// Got is the style the node actually exhibits.
	Got S
}

// StyleTracker implements the consistent-style pattern shared by style
// rules: in inferred mode the first observed style becomes the preferred
// one and produces no mismatch; in fixed mode every observation, including
// the first, is compared against the preconfigured value. Once a preferred
// value exists the comparison semantics of the two modes are identical.
//
// A tracker is scoped to a single rule invocation and must not be shared
// across documents or rules.
type StyleTracker[S comparable] struct {
	want   S
	pinned bool
}

// FixedStyle returns a tracker pinned to an explicit preferred style.
func FixedStyle[S comparable](want S) StyleTracker[S] {
	return StyleTracker[S]{want: want, pinned: true}
}

// InferredStyle returns a tracker that adopts the first observed style.
func InferredStyle[S comparable]() StyleTracker[S] {
	return StyleTracker[S]{}
}

// Observe feeds the next observed style in document order and returns the
// preferred style together with whether this observation mismatches it.
// In inferred mode the first observation pins the preferred style and
// never mismatches.
func (t *StyleTracker[S]) Observe(got S) (S, bool) {
	if !t.pinned {
		t.want = got
		t.pinned = true
		return t.want, false
	}
	return t.want, got != t.want
}

// Preferred returns the preferred style and whether one has been
// established yet.
func (t *StyleTracker[S]) Preferred() (S, bool) {
	return t.want, t.pinned
}

// InferStyles runs a tracker over nodes in document order and collects
// mismatch verdicts. Generated nodes and nodes for which extract reports
// no style are skipped; they neither pin nor compare. Zero matching nodes
// yield zero verdicts, as does a single matching node in inferred mode.
func InferStyles[S comparable](
	nodes []*mdast.Node,
	tracker StyleTracker[S],
	extract func(*mdast.Node) (S, bool),
) []StyleVerdict[S] {
	var verdicts []StyleVerdict[S]

	for _, n := range nodes {
		if n.IsGenerated() {
			continue
		}
		got, ok := extract(n)
		if !ok {
			continue
		}
		want, mismatch := tracker.Observe(got)
		if mismatch {
			verdicts = append(verdicts, StyleVerdict[S]{Node: n, Want: want, Got: got})
		}
	}

	return verdicts
}

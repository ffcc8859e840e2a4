// Package dotwriter renders a tree as a Graphviz DOT digraph. It knows
// nothing about suffix trees: it consumes a slice of plain NodeView
// values built by the caller from its own node iterator, so it can never
// mutate whatever produced them. This mirrors gaissmai/bart's
// writer-based dump/dumpRec helpers and a PrintTrie-style renderer, just
// emitting DOT instead of indented text.
package dotwriter

import (
	"fmt"
	"io"
)

// Edge is one labeled directed edge from a node to a child.
type Edge struct {
	To    int
	Label string
}

// NodeView is everything the writer needs to know about one node: an id
// stable for the duration of one Write call, its child edges, and an
// optional suffix link target.
type NodeView struct {
	ID            int
	Edges         []Edge
	HasSuffixLink bool
	SuffixLinkTo  int
}

// Write emits a single `digraph`, `rankdir=LR`, one small unlabeled
// circle per node, one labeled directed edge per child, and (for any
// NodeView with HasSuffixLink set) a dashed edge to its suffix-link
// target.
func Write(w io.Writer, nodes []NodeView) error {
	if _, err := fmt.Fprintln(w, "digraph SuffixTree {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=LR;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  node [shape=circle, label=\"\", width=0.15, style=filled, fillcolor=black];"); err != nil {
		return err
	}

	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "  n%d;\n", n.ID); err != nil {
			return err
		}
	}
	for _, n := range nodes {
		for _, e := range n.Edges {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d [label=%q];\n", n.ID, e.To, e.Label); err != nil {
				return err
			}
		}
		if n.HasSuffixLink {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d [style=dashed, color=gray, constraint=false];\n", n.ID, n.SuffixLinkTo); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

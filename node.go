package sufftree

import "slices"

// edgeEnd is a tagged union: a node's incoming edge either ends at a
// fixed index (internal node) or is open, meaning "extends to the
// current global end during construction, and to the end of whichever
// string this leaf belongs to afterward". Using a tag instead of a
// sentinel value such as 0 avoids a falsy-zero ambiguity some Ukkonen
// implementations fall into when an open end is represented as a plain
// int.
type edgeEnd struct {
	fixed int
	open  bool
}

func fixedEnd(i int) edgeEnd { return edgeEnd{fixed: i} }
func openEnd() edgeEnd       { return edgeEnd{open: true} }

// childEdge is one entry in a node's children, keyed by the first rune of
// the child's incoming edge label. Children are kept as a slice sorted by
// first, rather than a map, which gives Nodes() and the DOT writer a
// deterministic iteration order at no extra cost.
type childEdge struct {
	first rune
	node  *Node
}

// Node is one position in the suffix tree: either the root, an internal
// node with at least two children, or a leaf. The tree exclusively owns
// every Node it creates; SuffixLink and the parent back-link are
// non-owning references into the same arena and are never nil'd out
// (nodes are never deleted, per the Non-goals).
type Node struct {
	start      int
	end        edgeEnd
	children   []childEdge
	suffixLink *Node
	parent     *Node
}

func newRoot() *Node {
	return &Node{start: -1, end: openEnd()}
}

func newLeaf(parent *Node, start int) *Node {
	return &Node{start: start, end: openEnd(), parent: parent}
}

func newInternal(parent *Node, start, end int) *Node {
	return &Node{start: start, end: fixedEnd(end), parent: parent}
}

// IsLeaf reports whether n is a leaf: it has no children and an open end.
// The root satisfies end.open too, so it is excluded explicitly.
func (n *Node) IsLeaf() bool {
	return n.end.open && len(n.children) == 0 && n.parent != nil
}

// IsRoot reports whether n is the tree's root.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// SuffixLink returns n's suffix link, or nil if n has none (leaves, the
// root, and internal nodes not yet linked during construction all
// return nil).
func (n *Node) SuffixLink() *Node {
	return n.suffixLink
}

// ChildNodes returns n's children in ascending order of their incoming
// edge's first rune.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, len(n.children))
	for i, c := range n.children {
		out[i] = c.node
	}
	return out
}

// child returns the child edge keyed by first, if any.
func (n *Node) child(first rune) *Node {
	i, ok := slices.BinarySearchFunc(n.children, first, func(c childEdge, r rune) int {
		return int(c.first) - int(r)
	})
	if !ok {
		return nil
	}
	return n.children[i].node
}

// setChild inserts or replaces the child keyed by first, keeping the
// slice sorted by key.
func (n *Node) setChild(first rune, c *Node) {
	i, ok := slices.BinarySearchFunc(n.children, first, func(e childEdge, r rune) int {
		return int(e.first) - int(r)
	})
	if ok {
		n.children[i].node = c
		return
	}
	n.children = slices.Insert(n.children, i, childEdge{first: first, node: c})
}

// currentEnd resolves n's edge end for the matching walk during
// construction, where an open edge extends to the current global index
// plus one -- treat an in-progress leaf as running to the end of the
// text seen so far.
func (n *Node) currentEnd(globalIdx int) int {
	if n.end.open {
		return globalIdx + 1
	}
	return n.end.fixed
}

// edgeLen returns the length of n's incoming edge label as of globalIdx.
func (n *Node) edgeLen(globalIdx int) int {
	return n.currentEnd(globalIdx) - n.start
}

// logicalEnd resolves n's edge end for label rendering and path-length
// calculations once construction of the relevant string has finished:
// for a fixed end it is just that; for an open end it is the end of
// whichever inserted string's range covers n.start.
func (n *Node) logicalEnd(reg *stringRegistry) int {
	if !n.end.open {
		return n.end.fixed
	}
	rec, ok := reg.containing(n.start)
	if !ok {
		// Construction is still in progress and no string record covers
		// this leaf yet; there is no better answer than "no characters".
		return n.start
	}
	return rec.End
}

// label returns the characters on n's incoming edge, resolved via
// logicalEnd.
func (n *Node) label(buf *textBuffer, reg *stringRegistry) string {
	if n.IsRoot() {
		return ""
	}
	return buf.slice(n.start, n.logicalEnd(reg))
}

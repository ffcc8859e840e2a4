package sufftree

import "iter"

// traverse walks from the root matching successive runes of q, mirroring
// the builder's active point but locally and read-only. It returns the
// node whose incoming edge the match ends on (or the root, for an empty
// query) together with how many characters of that node's edge are
// consumed (0 when the match ends exactly at the node), and whether the
// whole of q matched.
func (t *Tree) traverse(q string) (n *Node, offset int, ok bool) {
	n = t.root
	offset = 0

	for _, c := range q {
		if offset > 0 {
			if t.buf.at(n.start+offset) != c {
				return nil, 0, false
			}
			offset++
		} else {
			child := n.child(c)
			if child == nil {
				return nil, 0, false
			}
			n = child
			offset = 1
		}
		if offset == n.logicalEnd(&t.registry)-n.start {
			offset = 0
		}
	}
	return n, offset, true
}

// Contains reports whether q is a substring of some inserted string
// (modulo terminators).
func (t *Tree) Contains(q string) bool {
	_, _, ok := t.traverse(q)
	return ok
}

// Occurrences returns the number of times q occurs across every inserted
// string.
func (t *Tree) Occurrences(q string) int {
	n, _, ok := t.traverse(q)
	if !ok {
		return 0
	}
	return countLeaves(n)
}

// FindAll returns a lazy sequence of every occurrence of q, as
// (string id, offset within that string) pairs. Emission order is
// unspecified; every occurrence appears exactly once.
func (t *Tree) FindAll(q string) iter.Seq2[StringID, int] {
	return func(yield func(StringID, int) bool) {
		n, _, ok := t.traverse(q)
		if !ok {
			return
		}
		for _, leaf := range collectLeaves(n) {
			rec, ok := t.registry.containing(leaf.start)
			if !ok {
				continue
			}
			pos := rec.End - rec.Start - t.pathLength(leaf)
			if !yield(rec.ID, pos) {
				return
			}
		}
	}
}

// pathLength returns the length of n's path label: the concatenation of
// edge labels from the root down to n.
func (t *Tree) pathLength(n *Node) int {
	length := 0
	for cur := n; !cur.IsRoot(); cur = cur.parent {
		length += cur.logicalEnd(&t.registry) - cur.start
	}
	return length
}

// countLeaves counts the leaves in the subtree rooted at n, n included.
func countLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += countLeaves(c.node)
	}
	return total
}

// collectLeaves gathers every leaf in the subtree rooted at n, n
// included, in the same order Nodes() would visit them.
func collectLeaves(n *Node) []*Node {
	if n.IsLeaf() {
		return []*Node{n}
	}
	var leaves []*Node
	for _, c := range n.children {
		leaves = append(leaves, collectLeaves(c.node)...)
	}
	return leaves
}

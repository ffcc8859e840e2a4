package sufftree

import (
	"fmt"
	"iter"
	"strings"
)

// Root returns the tree's root node, mainly useful for driving a custom
// traversal alongside Nodes().
func (t *Tree) Root() *Node {
	return t.root
}

// EdgeLabel returns the text on n's incoming edge, resolving an open end
// against the string registry. The root's label is the empty string.
func (t *Tree) EdgeLabel(n *Node) string {
	return n.label(&t.buf, &t.registry)
}

// Nodes returns a pre-order, depth-first sequence over every node in the
// tree, root first. Order among siblings follows the sorted child slice
// (ascending by first rune), so it is deterministic run to run. It is a
// read-only traversal; stopping early (returning false from the
// consuming range-over-func loop) is safe.
func (t *Tree) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var walk func(n *Node) bool
		walk = func(n *Node) bool {
			if !yield(n) {
				return false
			}
			for _, c := range n.children {
				if !walk(c.node) {
					return false
				}
			}
			return true
		}
		walk(t.root)
	}
}

// String renders the tree as indented text for quick inspection, in the
// same spirit as a debugger's tree dump: one line per node, children
// nested under their parent. It is independent of ToDot and not meant to
// be machine-parsed.
func (t *Tree) String() string {
	var b strings.Builder
	b.WriteString("@\n")
	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		children := n.children
		for i, c := range children {
			branch := "├──"
			next := prefix + "│   "
			if i == len(children)-1 {
				branch = "└──"
				next = prefix + "    "
			}
			marker := ""
			if c.node.IsLeaf() {
				marker = "*"
			}
			fmt.Fprintf(&b, "%s%s %q%s\n", prefix, branch, t.EdgeLabel(c.node), marker)
			walk(c.node, next)
		}
	}
	walk(t.root, "")
	return b.String()
}

package sufftree

import (
	"os"

	"github.com/benkalmus/sufftree/internal/dotwriter"
)

// ToDot writes the tree to path as a single Graphviz DOT digraph
// (rankdir=LR, one small circle per node, one labeled edge per child).
// When includeSuffixLinks is true, an additional dashed edge is emitted
// per suffix link. ToDot is read-only: it builds its view of the tree
// entirely from Nodes() and EdgeLabel, the same iterator any other
// external consumer would use.
func (t *Tree) ToDot(path string, includeSuffixLinks bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ids := make(map[*Node]int)
	for n := range t.Nodes() {
		ids[n] = len(ids)
	}

	views := make([]dotwriter.NodeView, 0, len(ids))
	for n := range t.Nodes() {
		v := dotwriter.NodeView{ID: ids[n]}
		for _, c := range n.ChildNodes() {
			v.Edges = append(v.Edges, dotwriter.Edge{To: ids[c], Label: t.EdgeLabel(c)})
		}
		if includeSuffixLinks {
			if sl := n.SuffixLink(); sl != nil {
				v.HasSuffixLink = true
				v.SuffixLinkTo = ids[sl]
			}
		}
		views = append(views, v)
	}

	return dotwriter.Write(f, views)
}

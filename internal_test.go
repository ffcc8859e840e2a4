package sufftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInternalNodesHaveAtLeastTwoChildren checks that every internal
// non-root node has at least two children. Distinct first characters
// among siblings are not checked here: the sorted child slice keys
// children uniquely by construction.
func TestInternalNodesHaveAtLeastTwoChildren(t *testing.T) {
	tr := New()
	_, err := tr.InsertString("abcabxabcd")
	require.NoError(t, err)

	for n := range tr.Nodes() {
		if n.IsRoot() || n.IsLeaf() {
			continue
		}
		assert.GreaterOrEqual(t, len(n.children), 2, "internal node with start=%d has %d children", n.start, len(n.children))
	}
}

// TestParentBackLinksAreConsistent checks that every child's parent
// pointer actually points back to the node that owns it.
func TestParentBackLinksAreConsistent(t *testing.T) {
	tr := New()
	_, err := tr.InsertString("mississippi")
	require.NoError(t, err)

	for n := range tr.Nodes() {
		for _, c := range n.ChildNodes() {
			assert.Same(t, n, c.parent, "child of node start=%d has wrong parent", n.start)
		}
	}
}

// TestSuffixLinksTargetInternalNodes checks that every non-nil suffix
// link points at a node that is itself internal (root included), never
// at a leaf.
func TestSuffixLinksTargetInternalNodes(t *testing.T) {
	tr := New()
	_, err := tr.InsertString("abcabxabcd")
	require.NoError(t, err)
	_, err = tr.InsertString("xabcabcaby")
	require.NoError(t, err)

	for n := range tr.Nodes() {
		if sl := n.SuffixLink(); sl != nil {
			assert.False(t, sl.IsLeaf(), "suffix link from start=%d points at a leaf", n.start)
		}
	}
}

// TestActivePointResetsToRootBetweenDisjointStrings exercises the
// builder state fields directly: after each string the active point is
// back at the root with nothing owed, and the next InsertString call
// still produces a correct tree.
func TestActivePointResetsToRootBetweenDisjointStrings(t *testing.T) {
	tr := New()
	_, err := tr.InsertString("aaa")
	require.NoError(t, err)
	assert.Same(t, tr.root, tr.active.node)
	assert.Equal(t, 0, tr.remainder)
	_, err = tr.InsertString("bbb")
	require.NoError(t, err)
	assert.Same(t, tr.root, tr.active.node)
	assert.Equal(t, 0, tr.remainder)

	assert.True(t, tr.Contains("aa"))
	assert.True(t, tr.Contains("bb"))
	assert.False(t, tr.Contains("ab"))
}

// TestNodeCountBound checks that total node count (including the root)
// never exceeds 2*sum(L_k+1) across every inserted string.
func TestNodeCountBound(t *testing.T) {
	tr := New()
	total := 0
	for _, s := range []string{"banana", "ananas", "panama", ""} {
		_, err := tr.InsertString(s)
		require.NoError(t, err)
		total += len(s) + 1
	}

	count := 0
	for range tr.Nodes() {
		count++
	}
	assert.LessOrEqual(t, count, 2*total)
}

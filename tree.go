// Package sufftree implements a generalized online suffix tree: after
// ingesting one or more strings via InsertString, it answers substring
// containment, occurrence counting, and all-occurrence enumeration in
// time proportional to the query length (plus the number of hits for
// enumeration), using Ukkonen's algorithm extended to multiple strings
// joined under unique per-string terminators.
//
// A Tree is not safe for concurrent use: InsertString mutates the active
// point, the suffix-link chain and the shared text buffer, and a reader
// racing an in-flight insertion sees undefined state. Callers must
// serialize all access to a given Tree themselves.
package sufftree

// Tree is a generalized suffix tree over every string inserted so far.
// The zero value is not usable; construct one with New.
type Tree struct {
	buf      textBuffer
	registry stringRegistry
	root     *Node

	// Builder state, persisted across InsertString calls so that
	// multiple strings extend the same tree.
	active    activePoint
	remainder int
	globalIdx int
}

// activePoint is the triple (node, edge-first-character, length-into-edge)
// where the next extension begins.
type activePoint struct {
	node   *Node
	edge   rune
	length int
}

// New creates an empty suffix tree.
func New() *Tree {
	t := &Tree{root: newRoot()}
	t.active = activePoint{node: t.root}
	t.globalIdx = -1
	return t
}

// GetString looks up the original string record by id.
func (t *Tree) GetString(id StringID) (StringRecord, error) {
	rec, ok := t.registry.get(id)
	if !ok {
		return StringRecord{}, ErrUnknownStringID
	}
	return rec, nil
}

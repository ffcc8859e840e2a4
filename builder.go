package sufftree

import "log/slog"

// InsertString ingests s into the tree: it chooses a terminator rune not
// present in the buffer or in s, appends s and the terminator to the
// shared text buffer, and extends the tree one character at a time using
// Ukkonen's online construction so that every suffix of s (followed by
// its terminator) ends at a leaf.
//
// Insertion is atomic: if a terminator cannot be found, the tree is left
// exactly as it was and a zero StringID is returned alongside the error.
func (t *Tree) InsertString(s string) (StringID, error) {
	if containsReservedRune(s) {
		return 0, ErrReservedCharacterInInput
	}

	term, err := chooseTerminator(&t.buf, s)
	if err != nil {
		return 0, err
	}

	start := t.buf.len()
	for _, c := range s {
		t.extend(c)
	}
	t.extend(term)
	end := t.buf.len()

	id := t.registry.add(start, end, term)
	slog.Debug("inserted string", "id", id, "length", end-start-1, "terminator", string(term))
	return id, nil
}

// extend runs one extension phase: it appends c to the text buffer and
// resolves every suffix owed to this phase (tracked by t.remainder)
// against the active point, creating leaves and splitting edges as
// needed and chaining suffix links between internal nodes created within
// the same phase.
func (t *Tree) extend(c rune) {
	i := t.buf.append(c)
	t.globalIdx = i
	t.remainder++

	var toLink *Node

	for t.remainder > 0 {
		if t.active.length == 0 {
			t.active.edge = c
		}

		next := t.active.node.child(t.active.edge)
		if next == nil {
			leaf := newLeaf(t.active.node, i)
			t.active.node.setChild(t.active.edge, leaf)
			if toLink != nil {
				toLink.suffixLink = t.active.node
			}
			toLink = t.active.node
		} else {
			edgeLen := next.edgeLen(t.globalIdx)

			if t.active.length >= edgeLen {
				// Skip-count descent: the active point lands past this
				// edge, so walk onto next and re-evaluate without
				// consuming a suffix. The new edge's first rune is the
				// character of the suffix being inserted at that depth,
				// i.e. the one active.length positions before c. Only
				// read it when some length remains on the edge --
				// landing exactly on next with length 0 means the top
				// of the loop will set active.edge from c instead.
				t.active.length -= edgeLen
				t.active.node = next
				if t.active.length > 0 {
					t.active.edge = t.buf.at(i - t.active.length)
				}
				continue
			}

			if t.buf.at(next.start+t.active.length) == c {
				// c already continues this edge implicitly: extend the
				// active point and end the phase, leaving the suffixes
				// still owed for later phases.
				t.active.length++
				if toLink != nil {
					toLink.suffixLink = t.active.node
				}
				toLink = t.active.node
				break
			}

			split := newInternal(t.active.node, next.start, next.start+t.active.length)
			t.active.node.setChild(t.active.edge, split)

			leaf := newLeaf(split, i)
			split.setChild(c, leaf)

			next.start += t.active.length
			next.parent = split
			split.setChild(t.buf.at(next.start), next)

			if toLink != nil {
				toLink.suffixLink = split
			}
			toLink = split
		}

		t.remainder--
		if t.active.node == t.root && t.active.length > 0 {
			t.active.length--
			t.active.edge = t.buf.at(i - t.remainder + 1)
		} else if t.active.node.suffixLink != nil {
			t.active.node = t.active.node.suffixLink
		} else {
			t.active.node = t.root
		}
	}
}

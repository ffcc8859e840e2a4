package sufftree

// StringID identifies a string inserted into a Tree. Ids are assigned in
// insertion order starting at 0 and are stable for the lifetime of the
// tree, so they compare and hash like plain integers.
type StringID int

// StringRecord describes one inserted string: its id, its half-open range
// [Start, End) in the tree's shared text buffer, and the terminator rune
// appended to disambiguate it from every other inserted string.
type StringRecord struct {
	ID         StringID
	Start, End int
	Terminator rune
}

// Len returns the length of the original string, excluding the terminator
// appended at insertion time.
func (r StringRecord) Len() int {
	return r.End - r.Start - 1
}

// stringRegistry records, in insertion order, the boundaries of every
// string inserted into a tree. Lookups by id are O(1); lookups by a text
// index (used to resolve which string a leaf belongs to) are a linear
// scan over the records.
type stringRegistry struct {
	records []StringRecord
}

func (r *stringRegistry) add(start, end int, terminator rune) StringID {
	id := StringID(len(r.records))
	r.records = append(r.records, StringRecord{
		ID:         id,
		Start:      start,
		End:        end,
		Terminator: terminator,
	})
	return id
}

func (r *stringRegistry) get(id StringID) (StringRecord, bool) {
	if id < 0 || int(id) >= len(r.records) {
		return StringRecord{}, false
	}
	return r.records[id], true
}

// containing returns the record for the string with the smallest End
// greater than idx, which is well-defined because string ranges never
// overlap.
func (r *stringRegistry) containing(idx int) (StringRecord, bool) {
	best := -1
	for i, rec := range r.records {
		if rec.End > idx && (best == -1 || rec.End < r.records[best].End) {
			best = i
		}
	}
	if best == -1 {
		return StringRecord{}, false
	}
	return r.records[best], true
}

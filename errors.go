package sufftree

import "errors"

var (
	// ErrNoTerminatorAvailable is returned when the terminator chooser has
	// exhausted its reserved code point range without finding one that is
	// absent from both the text buffer and the string being inserted.
	ErrNoTerminatorAvailable = errors.New("sufftree: no terminator available in reserved range")

	// ErrReservedCharacterInInput is returned when a string passed to
	// InsertString contains a code point from the terminator chooser's
	// reserved range.
	ErrReservedCharacterInInput = errors.New("sufftree: input contains reserved terminator character")

	// ErrUnknownStringID is returned by GetString for an id that was never
	// returned by InsertString on this tree.
	ErrUnknownStringID = errors.New("sufftree: unknown string id")
)

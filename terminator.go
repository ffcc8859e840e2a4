package sufftree

import (
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Reserved terminator range: code points in U+2980..U+2AFF are set aside
// for per-string terminators, and caller input must not contain them.
// This is the mathematical-operators-extension block, unlikely to
// collide with ordinary text input.
const (
	terminatorRangeLo = 0x2980
	terminatorRangeHi = 0x2AFF

	// maxTerminatorAttempts bounds the random reject-and-retry loop so a
	// pathological input (one that already contains most of the reserved
	// range) falls through to an in-order scan of the range instead of
	// looping forever.
	maxTerminatorAttempts = 4096
)

// reservedRangeSize is the number of code points available to the
// terminator chooser.
const reservedRangeSize = terminatorRangeHi - terminatorRangeLo + 1

// isReservedRune reports whether r falls in the terminator chooser's
// reserved range and therefore cannot appear in caller-supplied input.
func isReservedRune(r rune) bool {
	return r >= terminatorRangeLo && r <= terminatorRangeHi
}

// containsReservedRune checks a caller-supplied string for characters
// from the reserved range, enforcing InsertString's precondition that
// callers never supply a terminator character themselves.
func containsReservedRune(s string) bool {
	for _, r := range s {
		if isReservedRune(r) {
			return true
		}
	}
	return false
}

// chooseTerminator draws a code point from the reserved range that is
// absent from both buf and s. It rejects and redraws on collision; after
// maxTerminatorAttempts draws it scans the range in order, and only if
// the whole range is exhausted against the combined input does it report
// ErrNoTerminatorAvailable.
func chooseTerminator(buf *textBuffer, s string) (rune, error) {
	for attempt := 0; attempt < maxTerminatorAttempts; attempt++ {
		r := rune(terminatorRangeLo + rand.IntN(reservedRangeSize))
		if buf.contains(r) || strings.ContainsRune(s, r) {
			continue
		}
		return r, nil
	}
	for r := rune(terminatorRangeLo); r <= terminatorRangeHi; r++ {
		if !buf.contains(r) && !strings.ContainsRune(s, r) {
			return r, nil
		}
	}
	slog.Debug("terminator chooser exhausted reserved range", "attempts", maxTerminatorAttempts)
	return 0, ErrNoTerminatorAvailable
}

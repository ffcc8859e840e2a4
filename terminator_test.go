package sufftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseTerminatorAvoidsBufferAndInput(t *testing.T) {
	var buf textBuffer
	buf.appendString("hello")

	r, err := chooseTerminator(&buf, "world")
	require.NoError(t, err)
	assert.True(t, isReservedRune(r))
	assert.False(t, buf.contains(r))
	assert.NotContains(t, "world", string(r))
}

func TestChooseTerminatorFailsWhenRangeExhausted(t *testing.T) {
	var buf textBuffer
	for c := rune(terminatorRangeLo); c <= terminatorRangeHi; c++ {
		buf.append(c)
	}

	_, err := chooseTerminator(&buf, "")
	assert.ErrorIs(t, err, ErrNoTerminatorAvailable)
}

func TestContainsReservedRune(t *testing.T) {
	assert.False(t, containsReservedRune("plain ascii"))
	assert.True(t, containsReservedRune(string(rune(terminatorRangeLo))+"x"))
}

func TestDistinctTerminatorsAcrossInserts(t *testing.T) {
	tr := New()
	id1, err := tr.InsertString("abc")
	require.NoError(t, err)
	id2, err := tr.InsertString("abc")
	require.NoError(t, err)

	rec1, err := tr.GetString(id1)
	require.NoError(t, err)
	rec2, err := tr.GetString(id2)
	require.NoError(t, err)

	assert.NotEqual(t, rec1.Terminator, rec2.Terminator)
}

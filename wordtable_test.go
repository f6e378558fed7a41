package lz78

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordTableInsert(t *testing.T) {
	wt := NewWordTable()

	empty, err := wt.WordAt(EmptyCode)
	require.NoError(t, err)
	require.Empty(t, empty)

	require.NoError(t, wt.Insert(2, EmptyCode, 'a'))
	require.NoError(t, wt.Insert(3, 2, 'b'))
	require.NoError(t, wt.Insert(4, 3, 'c'))
	require.NoError(t, wt.Insert(5, 2, 'z'))
	require.Equal(t, 4, wt.Len())

	for code, want := range map[uint16]string{2: "a", 3: "ab", 4: "abc", 5: "az"} {
		w, err := wt.WordAt(code)
		require.NoError(t, err)
		assert.Equal(t, want, string(w), "code %d", code)
	}

	out, err := wt.AppendWord([]byte("x:"), 4)
	require.NoError(t, err)
	assert.Equal(t, "x:abc", string(out))
}

func TestWordTableWordsAreIndependent(t *testing.T) {
	wt := NewWordTable()
	require.NoError(t, wt.Insert(2, EmptyCode, 'a'))
	require.NoError(t, wt.Insert(3, 2, 'b'))

	w, err := wt.WordAt(3)
	require.NoError(t, err)
	w[0] = 'Q'

	again, err := wt.WordAt(3)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(again))
}

func TestWordTableErrors(t *testing.T) {
	wt := NewWordTable()

	assert.ErrorIs(t, wt.Insert(2, 9, 'a'), ErrUnknownCode)
	assert.ErrorIs(t, wt.Insert(2, StopCode, 'a'), ErrUnknownCode)
	assert.ErrorIs(t, wt.Insert(7, EmptyCode, 'a'), ErrCodeOutOfOrder)

	_, err := wt.WordAt(2)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestWordTableResetIdempotent(t *testing.T) {
	wt := NewWordTable()
	require.NoError(t, wt.Insert(2, EmptyCode, 'a'))
	require.NoError(t, wt.Insert(3, 2, 'a'))

	wt.Reset()
	wt.Reset()
	require.Equal(t, 0, wt.Len())
	require.Equal(t, StartCode, wt.NextCode())

	_, err := wt.WordAt(2)
	require.ErrorIs(t, err, ErrUnknownCode)
	empty, err := wt.WordAt(EmptyCode)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

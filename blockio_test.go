package lz78

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(r io.Reader, w io.Writer, blockSize int) *engine {
	return newEngine(r, w, (&Options{BlockSize: blockSize}).normalize())
}

func TestReadSymbolAcrossBlocks(t *testing.T) {
	for _, block := range []int{1, 2, 3, 4096} {
		e := testEngine(bytes.NewReader([]byte("hello")), nil, block)

		var got []byte
		for {
			sym, ok, err := e.readSymbol()
			require.NoError(t, err)
			if !ok {
				break
			}
			got = append(got, sym)
		}
		assert.Equal(t, "hello", string(got), "block=%d", block)
		assert.Equal(t, uint64(5), e.stats.TotalSymbols, "block=%d", block)

		// End of input stays end of input.
		_, ok, err := e.readSymbol()
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestReadSymbolSingleByte(t *testing.T) {
	e := testEngine(bytes.NewReader([]byte{'q'}), nil, 4096)

	sym, ok, err := e.readSymbol()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, byte('q'), sym)

	_, ok, err = e.readSymbol()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBufferPairBitLayout(t *testing.T) {
	// code 0b101 in 3 bits, then 0xA5 LSB first: 1 0 1 | 1 0 1 0 0 1 0 1
	for _, block := range []int{1, 2, 4096} {
		var out bytes.Buffer
		e := testEngine(nil, &out, block)

		require.NoError(t, e.bufferPair(0b101, 0xA5, 3))
		require.NoError(t, e.flushPairs())
		assert.Equal(t, []byte{0x2D, 0x05}, out.Bytes(), "block=%d", block)
		assert.Equal(t, uint64(11), e.stats.TotalBits)
	}
}

func TestFlushPairsLegacy(t *testing.T) {
	var exact, legacy bytes.Buffer

	e := testEngine(nil, &exact, 4096)
	require.NoError(t, e.bufferPair(0, 0xFF, 0))
	require.NoError(t, e.flushPairs())
	assert.Equal(t, []byte{0xFF}, exact.Bytes())

	l := newEngine(nil, &legacy, LegacyOptions().normalize())
	require.NoError(t, l.bufferPair(0, 0xFF, 0))
	require.NoError(t, l.flushPairs())
	assert.Equal(t, []byte{0xFF, 0x00}, legacy.Bytes(), "byte-aligned cursor still writes one more byte")
}

func TestReadPair(t *testing.T) {
	for _, block := range []int{1, 2, 4096} {
		var out bytes.Buffer
		w := testEngine(nil, &out, block)
		require.NoError(t, w.bufferPair(0b101, 0xA5, 3))
		require.NoError(t, w.bufferPair(0x1FF, 'z', 9))
		require.NoError(t, w.bufferPair(StopCode, 0, 9))
		require.NoError(t, w.flushPairs())

		r := testEngine(bytes.NewReader(out.Bytes()), nil, block)
		code, sym, ok, err := r.readPair(3)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, uint16(0b101), code)
		assert.Equal(t, byte(0xA5), sym)

		code, sym, ok, err = r.readPair(9)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, uint16(0x1FF), code)
		assert.Equal(t, byte('z'), sym)

		_, _, ok, err = r.readPair(9)
		require.NoError(t, err)
		assert.False(t, ok, "STOP ends the pair stream")
	}
}

func TestReadPairEmptyInput(t *testing.T) {
	r := testEngine(bytes.NewReader(nil), nil, 4096)
	_, _, ok, err := r.readPair(2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBufferWordFlushes(t *testing.T) {
	var out bytes.Buffer
	e := testEngine(nil, &out, 2)

	require.NoError(t, e.bufferWord([]byte("abc")))
	assert.Equal(t, "ab", out.String(), "full block written")
	require.NoError(t, e.bufferWord([]byte("defg")))
	assert.Equal(t, "abcdef", out.String())
	require.NoError(t, e.flushWords())
	assert.Equal(t, "abcdefg", out.String())
	assert.Equal(t, uint64(7), e.stats.TotalSymbols)

	require.NoError(t, e.flushWords())
	assert.Equal(t, "abcdefg", out.String())
}

func TestHeaderRoundTrip(t *testing.T) {
	var out bytes.Buffer
	w := testEngine(nil, &out, 4096)
	require.NoError(t, w.writeHeader(Header{Magic: Magic, Protection: 0o755}))
	assert.Equal(t, []byte{0xAC, 0xBA, 0xAD, 0xBA, 0xED, 0x01, 0x00, 0x00}, out.Bytes())
	assert.Equal(t, uint64(64), w.stats.TotalBits)

	r := testEngine(bytes.NewReader(out.Bytes()), nil, 4096)
	h, err := r.readHeader()
	require.NoError(t, err)
	assert.Equal(t, Header{Magic: Magic, Protection: 0o755}, h)

	r = testEngine(bytes.NewReader(out.Bytes()[:5]), nil, 4096)
	_, err = r.readHeader()
	assert.ErrorIs(t, err, ErrShortHeader)
}

type failingIO struct{ err error }

func (f failingIO) Read([]byte) (int, error) { return 0, f.err }
func (f failingIO) Write([]byte) (int, error) { return 0, f.err }

func TestRawIOErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := readBytes(failingIO{boom}, make([]byte, 4))
	assert.ErrorIs(t, err, ErrRead)

	_, err = writeBytes(failingIO{boom}, []byte{1})
	assert.ErrorIs(t, err, ErrWrite)

	_, err = writeBytes(failingIO{nil}, []byte{1})
	assert.ErrorIs(t, err, ErrWrite)

	n, err := readBytes(bytes.NewReader([]byte{1, 2}), make([]byte, 4))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

package lz78

import (
	"io"

	"github.com/pkg/errors"
)

// engine is the block-buffered bit/byte I/O of one session.
// The encoder uses readSymbol and bufferPair; the decoder uses readPair and bufferWord.
type engine struct {
	r io.Reader
	w io.Writer

	legacy bool

	block   []byte // Symbol block buffer.
	bytePos int    // Next symbol index in block.
	nread   int    // Valid bytes in block (read side).

	bits      *BitVector // Pair block buffer, block*8 bits.
	blockBits uint32
	bitPos    uint32 // Next bit index in bits.
	validBits uint32 // Bits filled by the last refill (read side).

	stats Stats
}

func newEngine(r io.Reader, w io.Writer, opts *Options) *engine {
	blockBits := uint32(opts.BlockSize) * 8 // #nosec G115 -- block sizes are small

	return &engine{
		r:         r,
		w:         w,
		legacy:    opts.Legacy,
		block:     make([]byte, opts.BlockSize),
		bits:      NewBitVector(blockBits),
		blockBits: blockBits,
	}
}

// writeHeader writes h verbatim.
func (e *engine) writeHeader(h Header) error {
	buf, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := writeBytes(e.w, buf); err != nil {
		return err
	}
	e.stats.TotalBits += HeaderSize * 8

	return nil
}

// readHeader reads a header. A stream shorter than a header fails with ErrShortHeader.
func (e *engine) readHeader() (Header, error) {
	buf := make([]byte, HeaderSize)
	n, err := readBytes(e.r, buf)
	if err != nil {
		return Header{}, err
	}
	e.stats.TotalBits += uint64(n) * 8
	if n < HeaderSize {
		return Header{}, errors.Wrapf(ErrShortHeader, "got %d of %d bytes", n, HeaderSize)
	}

	var h Header
	if err := h.UnmarshalBinary(buf); err != nil {
		return Header{}, err
	}

	return h, nil
}

// readSymbol returns the next input byte; ok is false at end of input.
func (e *engine) readSymbol() (sym byte, ok bool, err error) {
	if e.bytePos == e.nread {
		n, err := readBytes(e.r, e.block)
		if err != nil {
			return 0, false, err
		}
		e.stats.TotalSymbols += uint64(n)
		e.nread, e.bytePos = n, 0
		if n == 0 {
			return 0, false, nil
		}
	}

	sym = e.block[e.bytePos]
	e.bytePos++

	return sym, true, nil
}

// bufferPair appends width bits of code, then 8 bits of sym, both LSB first.
func (e *engine) bufferPair(code uint16, sym byte, width uint8) error {
	for bit := uint8(0); bit < width; bit++ {
		if err := e.putBit(uint8(code>>bit) & 1); err != nil {
			return err
		}
	}
	for bit := uint8(0); bit < 8; bit++ {
		if err := e.putBit((sym >> bit) & 1); err != nil {
			return err
		}
	}

	return nil
}

// putBit writes out a full block lazily, just before the first bit that does not fit.
// The store is zeroed after each block so the padding of the final short block is
// zero; legacy mode keeps the previous block's bits there.
func (e *engine) putBit(b uint8) error {
	if e.bitPos == e.blockBits {
		if _, err := writeBytes(e.w, e.bits.Bytes()[:len(e.block)]); err != nil {
			return err
		}
		e.bitPos = 0
		if !e.legacy {
			clear(e.bits.Bytes())
		}
	}

	var err error
	if b != 0 {
		err = e.bits.Set(e.bitPos)
	} else {
		err = e.bits.Clear(e.bitPos)
	}
	if err != nil {
		return err
	}
	e.bitPos++
	e.stats.TotalBits++

	return nil
}

// flushPairs writes the buffered tail: ceil(bitPos/8) bytes, or in legacy mode
// floor(bitPos/8)+1, which adds one more byte when the cursor is byte-aligned.
func (e *engine) flushPairs() error {
	n := int((e.bitPos + 7) / 8)
	if e.legacy {
		n = int(e.bitPos/8) + 1
	}
	if n == 0 {
		return nil
	}
	_, err := writeBytes(e.w, e.bits.Bytes()[:n])

	return err
}

// readPair reads width bits of code and 8 bits of symbol. ok is false when the
// input is exhausted at a block refill or when the code is StopCode.
func (e *engine) readPair(width uint8) (code uint16, sym byte, ok bool, err error) {
	for bit := uint8(0); bit < width; bit++ {
		b, ok, err := e.getBit()
		if !ok || err != nil {
			return 0, 0, false, err
		}
		code |= uint16(b) << bit
	}
	for bit := uint8(0); bit < 8; bit++ {
		b, ok, err := e.getBit()
		if !ok || err != nil {
			return 0, 0, false, err
		}
		sym |= b << bit
	}

	if code == StopCode {
		return code, sym, false, nil
	}

	return code, sym, true, nil
}

// getBit refills the bit buffer when the cursor is at a block boundary or at 0.
// Bits past the end of a short final block read as end of input.
func (e *engine) getBit() (uint8, bool, error) {
	if e.bitPos == e.blockBits || e.bitPos == 0 {
		n, err := readBytes(e.r, e.bits.Bytes()[:len(e.block)])
		if err != nil {
			return 0, false, err
		}
		e.bitPos = 0
		e.validBits = uint32(n) * 8 // #nosec G115 -- n <= block size
		if n == 0 {
			return 0, false, nil
		}
	}
	if e.bitPos >= e.validBits {
		return 0, false, nil
	}

	b, err := e.bits.Bit(e.bitPos)
	if err != nil {
		return 0, false, err
	}
	e.bitPos++
	e.stats.TotalBits++

	return b, true, nil
}

// bufferWord appends word to the symbol block, writing out each full block.
func (e *engine) bufferWord(word []byte) error {
	for len(word) > 0 {
		n := copy(e.block[e.bytePos:], word)
		word = word[n:]
		e.bytePos += n
		e.stats.TotalSymbols += uint64(n)
		if e.bytePos == len(e.block) {
			if _, err := writeBytes(e.w, e.block); err != nil {
				return err
			}
			e.bytePos = 0
		}
	}

	return nil
}

// flushWords writes the partially filled symbol block.
func (e *engine) flushWords() error {
	if e.bytePos == 0 {
		return nil
	}
	_, err := writeBytes(e.w, e.block[:e.bytePos])
	e.bytePos = 0

	return err
}

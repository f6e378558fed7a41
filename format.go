package lz78

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// LZ78 wire format constants.
const (
	StopCode  uint16 = 0              // End-of-stream sentinel.
	EmptyCode uint16 = 1              // Code of the trie root and of the empty word.
	StartCode uint16 = 2              // First code assigned to a learned entry.
	MaxCode   uint16 = math.MaxUint16 // Reaching it forces a dictionary reset.

	Magic      uint32 = 0xBAADBAAC // File header format identifier.
	BlockSize         = 4096       // Default raw I/O block, in bytes.
	Alphabet          = 256        // Symbols per trie node.
	HeaderSize        = 8          // magic u32, protection u16, 2 pad bytes.
)

// Header is written once before any pairs.
type Header struct {
	Magic      uint32 // Must equal Magic.
	Protection uint16 // Permission bits of the source file.
}

// MarshalBinary encodes h as magic (LE), protection (LE) and two zero pad bytes,
// the layout of the legacy struct on little-endian hosts.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.Protection)

	return buf, nil
}

// UnmarshalBinary decodes a header produced by MarshalBinary. Pad bytes are ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return ErrShortHeader
	}

	h.Magic = binary.LittleEndian.Uint32(data[0:4])
	h.Protection = binary.LittleEndian.Uint16(data[4:6])

	return nil
}

// bitLength returns the 1-based position of the highest set bit of v; bitLength(0) == 0.
// Both sides derive the code width from nextCode, so no width is transmitted.
func bitLength(v uint16) uint8 {
	return uint8(bits.Len16(v)) // #nosec G115 -- at most 16
}

/*
Package lz78 implements an LZ78 adaptive-dictionary compressor and decompressor.

Format: an 8-byte header (magic 0xBAADBAAC as uint32 LE, permission bits as uint16 LE,
two zero pad bytes) followed by a bit stream of (code, symbol) pairs, LSB first.
Each pair is bitLength(nextCode) bits of code and 8 bits of symbol, where nextCode
is the next free dictionary code on both sides, so no width is transmitted.
Codes: 0 = STOP, 1 = empty word, 2..65534 = learned entries. When the next code
reaches 65535 both sides drop the dictionary and start again at 2.
The stream ends with a STOP pair; the bit stream is written in 4096-byte blocks
and a final short block.

Use Compress(src, opts) and Decompress(src, opts) for in-memory data, with nil for defaults.
Use Encode(w, r, hdr, opts) and Decode(w, r, opts) to stream between an io.Reader and an io.Writer.
Use LegacyOptions() to produce archives byte-identical to those of the legacy C encoder.

# Examples

Round-trip compress and decompress:

	enc, err := lz78.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lz78.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Stream a file, keeping its permission bits in the header:

	hdr := lz78.Header{Protection: uint16(info.Mode().Perm())}
	stats, err := lz78.Encode(out, in, hdr, nil)
	if err != nil {
		return err
	}
	fmt.Printf("saved %.2f%%\n", stats.Ratio())

Reject foreign input:

	_, _, err := lz78.Decode(out, in, nil)
	if errors.Is(err, lz78.ErrBadMagic) {
		// not an lz78 stream; nothing was written to out
	}
*/
package lz78

package lz78

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// pairSource feeds the decoder one pair at a time.
type pairSource interface {
	readPair(width uint8) (code uint16, sym byte, ok bool, err error)
}

// wordSink receives the decoder's output words.
type wordSink interface {
	bufferWord(word []byte) error
}

// decoder relearns the encoder's dictionary one pair behind and emits each new word.
type decoder struct {
	src    pairSource
	out    wordSink
	table  *WordTable
	log    *zap.Logger
	resets int
}

// Decompress decodes a complete stream produced by Compress or Encode.
// Options nil means DefaultOptions().
func Decompress(src []byte, opts *Options) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(src) * 2)

	if _, _, err := Decode(&out, bytes.NewReader(src), opts); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Decode reads a stream from r and writes the original bytes to w.
// Nothing is written when the header magic does not match (ErrBadMagic).
// Options nil means DefaultOptions().
func Decode(w io.Writer, r io.Reader, opts *Options) (Header, Stats, error) {
	if r == nil {
		return Header{}, Stats{}, ErrNilReader
	}
	if w == nil {
		return Header{}, Stats{}, ErrNilWriter
	}
	opts = opts.normalize()

	eng := newEngine(r, w, opts)
	hdr, err := eng.readHeader()
	if err != nil {
		return hdr, eng.stats, err
	}
	if hdr.Magic != Magic {
		opts.Logger.Debug("lz78 header rejected", zap.Uint32("magic", hdr.Magic))
		return hdr, eng.stats, errors.Wrapf(ErrBadMagic, "magic=0x%08X want=0x%08X", hdr.Magic, Magic)
	}

	dec := &decoder{
		src:   eng,
		out:   eng,
		table: NewWordTable(),
		log:   opts.Logger,
	}
	err = dec.run()
	eng.stats.Resets = dec.resets
	if err != nil {
		return hdr, eng.stats, err
	}
	if err := eng.flushWords(); err != nil {
		return hdr, eng.stats, err
	}

	opts.Logger.Debug("lz78 decode done",
		zap.Uint64("symbols", eng.stats.TotalSymbols),
		zap.Uint64("bits", eng.stats.TotalBits),
		zap.Int("resets", eng.stats.Resets))

	return hdr, eng.stats, nil
}

// run consumes pairs until STOP or end of input.
func (d *decoder) run() error {
	next := StartCode
	var word []byte

	for {
		code, sym, ok, err := d.src.readPair(bitLength(next))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := d.table.Insert(next, code, sym); err != nil {
			return err
		}
		word, err = d.table.AppendWord(word[:0], next)
		if err != nil {
			return err
		}
		if err := d.out.bufferWord(word); err != nil {
			return err
		}

		next++
		if next == MaxCode {
			d.table.Reset()
			d.resets++
			d.log.Debug("lz78 decoder dictionary reset", zap.Int("resets", d.resets))
			next = StartCode
		}
	}
}

package lz78

import (
	"bytes"
	"io"

	"go.uber.org/zap"
)

// DefaultProtection is the permission field Compress stores in the header.
const DefaultProtection uint16 = 0o644

// pairSink receives the encoder's output pairs.
type pairSink interface {
	bufferPair(code uint16, sym byte, width uint8) error
}

// symbolSource feeds the encoder one input byte at a time.
type symbolSource interface {
	readSymbol() (sym byte, ok bool, err error)
}

// encoder walks the trie over the input and emits a pair at each mismatch.
type encoder struct {
	src    symbolSource
	out    pairSink
	trie   *Trie
	legacy bool
	log    *zap.Logger
	resets int
}

// Compress encodes src into a complete stream (header, pairs, flush).
// Options nil means DefaultOptions().
func Compress(src []byte, opts *Options) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(HeaderSize + len(src)/2 + 16)

	hdr := Header{Magic: Magic, Protection: DefaultProtection}
	if _, err := Encode(&out, bytes.NewReader(src), hdr, opts); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Encode reads r to EOF and writes the compressed stream to w.
// hdr.Magic is forced to Magic; hdr.Protection is stored as given.
// Options nil means DefaultOptions().
func Encode(w io.Writer, r io.Reader, hdr Header, opts *Options) (Stats, error) {
	if r == nil {
		return Stats{}, ErrNilReader
	}
	if w == nil {
		return Stats{}, ErrNilWriter
	}
	opts = opts.normalize()

	eng := newEngine(r, w, opts)
	hdr.Magic = Magic
	if err := eng.writeHeader(hdr); err != nil {
		return eng.stats, err
	}

	enc := &encoder{
		src:    eng,
		out:    eng,
		trie:   NewTrie(),
		legacy: opts.Legacy,
		log:    opts.Logger,
	}
	err := enc.run()
	eng.stats.Resets = enc.resets
	if err != nil {
		return eng.stats, err
	}
	if err := eng.flushPairs(); err != nil {
		return eng.stats, err
	}

	opts.Logger.Debug("lz78 encode done",
		zap.Uint64("symbols", eng.stats.TotalSymbols),
		zap.Uint64("bits", eng.stats.TotalBits),
		zap.Int("resets", eng.stats.Resets))

	return eng.stats, nil
}

// run drives the trie over every input symbol and emits the tail and STOP pairs.
func (c *encoder) run() error {
	root := c.trie.Root()
	curr := root
	prev := root // Parent of curr, kept for the tail pair.
	var prevSym byte
	next := StartCode

	for {
		sym, ok, err := c.src.readSymbol()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if child, found := c.trie.Step(curr, sym); found {
			prev = curr
			curr = child
		} else {
			if err := c.out.bufferPair(curr, sym, bitLength(next)); err != nil {
				return err
			}
			if err := c.trie.Learn(curr, sym, next); err != nil {
				return err
			}
			curr = root
			next++
		}

		if next == MaxCode {
			c.reset()
			curr = root
			next = StartCode
		}
		prevSym = sym
	}

	// A match still pending at EOF: emit it as its parent plus the last symbol.
	if curr != root {
		if err := c.out.bufferPair(prev, prevSym, bitLength(next)); err != nil {
			return err
		}
		next = c.advance(next)
	}

	return c.out.bufferPair(StopCode, 0, bitLength(next))
}

// advance bumps the code counter after the tail pair the way the decoder will.
func (c *encoder) advance(next uint16) uint16 {
	next++
	if next == MaxCode {
		if c.legacy {
			return next % MaxCode
		}
		return StartCode
	}

	return next
}

func (c *encoder) reset() {
	c.trie.Reset()
	c.resets++
	c.log.Debug("lz78 encoder dictionary reset", zap.Int("resets", c.resets))
}

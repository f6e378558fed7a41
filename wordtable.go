package lz78

import "github.com/pkg/errors"

// WordTable is the decoder-side dictionary mapping a code to its word.
//
// Each entry stores a backpointer to its base entry plus one trailing symbol;
// AppendWord resolves the chain, so callers still see every word as a full,
// independent byte sequence.
type WordTable struct {
	entries []wordEntry // entries[EmptyCode] is the empty word; entries[StopCode] is unused.
}

type wordEntry struct {
	base   uint16 // Code of the word this one extends.
	sym    byte   // Trailing symbol.
	length uint32 // Resolved word length.
}

// NewWordTable returns a table holding only the empty word.
func NewWordTable() *WordTable {
	return &WordTable{
		entries: make([]wordEntry, StartCode, 1024),
	}
}

// Len returns the number of bound entries besides the empty word.
func (wt *WordTable) Len() int {
	return len(wt.entries) - int(StartCode)
}

// NextCode returns the code the next inserted word must carry.
func (wt *WordTable) NextCode() uint16 {
	return uint16(len(wt.entries)) // #nosec G115 -- bounded by MaxCode
}

// Insert binds next to WordAt(base) followed by sym.
func (wt *WordTable) Insert(next, base uint16, sym byte) error {
	if !wt.bound(base) {
		return errors.Wrapf(ErrUnknownCode, "base=%d next=%d", base, next)
	}
	if next != wt.NextCode() || next >= MaxCode {
		return errors.Wrapf(ErrCodeOutOfOrder, "code=%d want=%d", next, wt.NextCode())
	}

	wt.entries = append(wt.entries, wordEntry{
		base:   base,
		sym:    sym,
		length: wt.entries[base].length + 1,
	})

	return nil
}

// WordAt returns a fresh copy of the word bound to code.
func (wt *WordTable) WordAt(code uint16) ([]byte, error) {
	return wt.AppendWord(nil, code)
}

// AppendWord appends the word bound to code to dst and returns the extended slice.
func (wt *WordTable) AppendWord(dst []byte, code uint16) ([]byte, error) {
	if !wt.bound(code) {
		return dst, errors.Wrapf(ErrUnknownCode, "code=%d", code)
	}

	n := int(wt.entries[code].length)
	start := len(dst)
	dst = append(dst, make([]byte, n)...)

	// Walk backpointers, filling from the tail.
	for i := start + n - 1; code != EmptyCode; i-- {
		e := wt.entries[code]
		dst[i] = e.sym
		code = e.base
	}

	return dst, nil
}

// Reset unbinds every entry except the empty word.
func (wt *WordTable) Reset() {
	wt.entries = wt.entries[:StartCode]
}

func (wt *WordTable) bound(code uint16) bool {
	return code != StopCode && int(code) < len(wt.entries)
}

package lz78

import (
	"io"

	"github.com/pkg/errors"
)

// readBytes reads until buf is full or r is exhausted and returns the count read.
// End of input is not an error; any other failure is wrapped in ErrRead.
func readBytes(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return n, nil
		}

		return n, errors.Wrapf(ErrRead, "%v (after %d bytes)", err, n)
	}

	return n, nil
}

// writeBytes writes all of buf to w. A short write without an error from w
// is reported as io.ErrShortWrite, wrapped in ErrWrite.
func writeBytes(w io.Writer, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := w.Write(buf[total:])
		total += n
		if err != nil {
			return total, errors.Wrapf(ErrWrite, "%v (after %d bytes)", err, total)
		}
		if n == 0 {
			return total, errors.Wrapf(ErrWrite, "%v (after %d bytes)", io.ErrShortWrite, total)
		}
	}

	return total, nil
}

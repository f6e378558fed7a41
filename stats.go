package lz78

// Stats holds the running counters of one encode or decode session.
type Stats struct {
	TotalBits    uint64 // Packed bits written or read, header included.
	TotalSymbols uint64 // Uncompressed bytes read (encode) or written (decode).
	Resets       int    // Dictionary resets triggered by reaching MaxCode.
}

// CompressedSize returns the packed size in whole bytes.
func (s Stats) CompressedSize() uint64 {
	return (s.TotalBits + 7) / 8
}

// Ratio returns the space saving in percent: 100 * (1 - compressed/uncompressed).
// It is 0 when nothing was uncompressed, and negative when the output grew.
func (s Stats) Ratio() float64 {
	if s.TotalSymbols == 0 {
		return 0
	}

	return 100 * (1 - float64(s.CompressedSize())/float64(s.TotalSymbols))
}

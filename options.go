package lz78

import "go.uber.org/zap"

// Options configures Encode, Decode, Compress and Decompress.
type Options struct {
	// BlockSize is the raw I/O block in bytes. 0 means BlockSize (4096).
	// Outside legacy mode the output bytes do not depend on it, and a stream
	// decodes with any block size.
	BlockSize int
	// Legacy reproduces the quirks of the legacy C encoder for byte-exact archives:
	// the final flush writes floor(bits/8)+1 bytes even when the bit cursor is
	// byte-aligned, the final block's padding keeps bits of the previous block, and
	// the code counter after a pending tail pair wraps modulo MaxCode instead of
	// resetting to StartCode. Decoding is unaffected.
	Legacy bool
	// Logger receives debug events (dictionary resets, header checks). Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns options for default behavior: 4096-byte blocks, exact final flush.
func DefaultOptions() *Options {
	return &Options{
		BlockSize: BlockSize,
	}
}

// LegacyOptions returns options that reproduce legacy archives byte for byte.
func LegacyOptions() *Options {
	return &Options{
		BlockSize: BlockSize,
		Legacy:    true,
	}
}

// normalize fills zero fields with defaults. Nil opts means DefaultOptions().
func (o *Options) normalize() *Options {
	if o == nil {
		return DefaultOptions().normalize()
	}

	out := *o
	if out.BlockSize <= 0 {
		out.BlockSize = BlockSize
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}

	return &out
}

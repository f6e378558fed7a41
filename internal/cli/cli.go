// Package cli holds the glue shared by the lz78-encode and lz78-decode binaries:
// flag parsing, stream opening, permission copying, logging and statistics.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/woozymasta/lz78"
)

// Config is the command surface of both binaries.
type Config struct {
	Verbose bool   // -v: print statistics and debug events.
	Input   string // -i: input path, stdin when empty.
	Output  string // -o: output path, stdout when empty.
}

// ParseFlags parses args (without the program name) into a Config.
func ParseFlags(name string, args []string, output io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.Verbose, "v", false, "print compression statistics on stderr")
	fs.StringVar(&cfg.Input, "i", "", "file to read (default is stdin)")
	fs.StringVar(&cfg.Output, "o", "", "file to write (default is stdout)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return cfg, nil
}

// NewLogger returns a console logger on stderr; verbose enables debug level.
func NewLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core)
}

// Encode compresses cfg.Input into cfg.Output and returns the session statistics.
func Encode(cfg Config, log *zap.Logger) (lz78.Stats, error) {
	in, err := openInput(cfg.Input)
	if err != nil {
		return lz78.Stats{}, err
	}
	defer closeInput(cfg.Input, in)

	prot, err := protectionOf(in)
	if err != nil {
		return lz78.Stats{}, err
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return lz78.Stats{}, err
	}
	if err := applyProtection(cfg.Output, prot); err != nil {
		_ = out.Close()
		return lz78.Stats{}, err
	}

	opts := lz78.DefaultOptions()
	opts.Logger = log
	stats, err := lz78.Encode(out, in, lz78.Header{Protection: prot}, opts)
	if err != nil {
		_ = out.Close()
		return stats, err
	}

	return stats, closeOutput(cfg.Output, out)
}

// Decode decompresses cfg.Input into cfg.Output and returns the session statistics.
// On a bad header the output file is created but left empty.
func Decode(cfg Config, log *zap.Logger) (lz78.Stats, error) {
	in, err := openInput(cfg.Input)
	if err != nil {
		return lz78.Stats{}, err
	}
	defer closeInput(cfg.Input, in)

	out, err := openOutput(cfg.Output)
	if err != nil {
		return lz78.Stats{}, err
	}

	opts := lz78.DefaultOptions()
	opts.Logger = log
	hdr, stats, err := lz78.Decode(out, in, opts)
	if err != nil {
		_ = out.Close()
		return stats, err
	}
	if err := applyProtection(cfg.Output, hdr.Protection); err != nil {
		_ = out.Close()
		return stats, err
	}

	return stats, closeOutput(cfg.Output, out)
}

// PrintStats writes the human-readable statistics report.
func PrintStats(w io.Writer, s lz78.Stats) {
	fmt.Fprintf(w, "Compressed file size: %d bytes\n", s.CompressedSize())
	fmt.Fprintf(w, "Uncompressed file size: %d bytes\n", s.TotalSymbols)
	fmt.Fprintf(w, "Compression ratio: %.2f%%\n", s.Ratio())
}

// Main runs one binary: parse flags, run the session, report. It returns the exit status.
func Main(name string, args []string, run func(Config, *zap.Logger) (lz78.Stats, error)) int {
	cfg, err := ParseFlags(name, args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
		return 2
	}

	log := NewLogger(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	stats, err := run(cfg, log)
	if err != nil {
		log.Error(name+" failed", zap.Error(err))
		return 1
	}
	if cfg.Verbose {
		PrintStats(os.Stderr, stats)
	}

	return 0
}

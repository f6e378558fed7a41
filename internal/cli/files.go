package cli

import (
	"os"

	"github.com/pkg/errors"

	"github.com/woozymasta/lz78"
)

func openInput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdin, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}

	return f, nil
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "open output")
	}

	return f, nil
}

func closeOutput(path string, f *os.File) error {
	if path == "" {
		return nil
	}

	return errors.Wrap(f.Close(), "close output")
}

// protectionOf returns the permission bits of f, or 0644 for non-regular inputs such as pipes.
func protectionOf(f *os.File) (uint16, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat input")
	}
	if !info.Mode().IsRegular() {
		return lz78.DefaultProtection, nil
	}

	return uint16(info.Mode().Perm()), nil // #nosec G115 -- Perm fits in 9 bits
}

// applyProtection sets the permission bits of the output file; stdout is left alone.
func applyProtection(path string, prot uint16) error {
	if path == "" {
		return nil
	}

	return errors.Wrap(os.Chmod(path, os.FileMode(prot).Perm()), "chmod output")
}

func closeInput(path string, f *os.File) {
	if path != "" {
		_ = f.Close()
	}
}

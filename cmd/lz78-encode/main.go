// Command lz78-encode encodes a byte stream with the LZ78 codec.
//
// Usage:
//
//	lz78-encode [-v] [-i input] [-o output]
//
// Input defaults to stdin and output to stdout. -v prints statistics on stderr.
package main

import (
	"os"

	"github.com/woozymasta/lz78/internal/cli"
)

func main() {
	os.Exit(cli.Main("lz78-encode", os.Args[1:], cli.Encode))
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz78

package lz78

import "github.com/pkg/errors"

// Package errors. Use errors.New for static messages, errors.Wrapf when values are needed.
var (
	ErrBadMagic       = errors.New("input is not an lz78 stream (bad magic)")
	ErrShortHeader    = errors.New("input ended inside the file header")
	ErrRead           = errors.New("failed to read input")
	ErrWrite          = errors.New("failed to write output")
	ErrBitIndex       = errors.New("bit index out of range")
	ErrTrieSlotTaken  = errors.New("trie child already exists")
	ErrCodeOutOfOrder = errors.New("dictionary code is not the next free code")
	ErrUnknownCode    = errors.New("dictionary code is not bound")
	ErrNilReader      = errors.New("reader is nil")
	ErrNilWriter      = errors.New("writer is nil")
)

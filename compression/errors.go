// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression and compression. Specific errors wrap one
// of the kind errors (ErrFormat, ErrCorruptData, ErrInvalidArgument), so callers
// can match on either with errors.Is.
var (
	// ErrEmptyInput is returned when the input slice is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrFormat is returned when a block does not start with the expected format tag.
	ErrFormat = errors.New("unexpected format tag")
	// ErrUnsupportedFormat is returned for known BIOS formats this package does not decode (Huffman).
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported compression format", ErrFormat)

	// ErrCorruptData is the kind error for malformed compressed bodies.
	ErrCorruptData = errors.New("corrupt compressed data")
	// ErrInputOverrun is returned when the input ends before the declared length is produced.
	ErrInputOverrun = fmt.Errorf("%w: input overrun", ErrCorruptData)
	// ErrOutputOverrun is returned when a unit would produce more than the declared length.
	ErrOutputOverrun = fmt.Errorf("%w: output overrun", ErrCorruptData)
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = fmt.Errorf("%w: lookbehind underrun", ErrCorruptData)

	// ErrInvalidArgument is the kind error for malformed call parameters.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInputTooShort is returned when CompressLZ gets fewer than two bytes to seed its window.
	ErrInputTooShort = fmt.Errorf("%w: input shorter than %d bytes", ErrInvalidArgument, lzSeedLen)
	// ErrInputTooLarge is returned when the input does not fit the 24-bit header length
	// or exceeds ReaderOptions.MaxInputSize.
	ErrInputTooLarge = fmt.Errorf("%w: input too large", ErrInvalidArgument)

	// ErrCompressInternal is returned when the compressor hits an internal invariant violation.
	ErrCompressInternal = errors.New("internal compressor error")
)

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

import "io"

// DecompressRLE decompresses one RLE block. src must start with the 0x30 tag.
//
// Each run starts with a flag byte: with the top bit set the next byte is
// repeated low7+3 times, otherwise low7+1 literal bytes follow.
func DecompressRLE(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	return decodeBlock(&sliceReader{src: src}, FormatRLE)
}

// DecompressRLEFrom decompresses one RLE block read from r.
func DecompressRLEFrom(r io.ByteReader) ([]byte, error) {
	return decodeBlock(r, FormatRLE)
}

// RLEBlockSize walks one RLE block from r and returns how many input bytes it occupies.
func RLEBlockSize(r io.ByteReader) (int, error) {
	return measureBlock(r, FormatRLE)
}

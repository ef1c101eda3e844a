// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

import "io"

// DecompressLZ decompresses one LZ77 block. src must start with the 0x10 tag;
// bytes after the end of the block are ignored.
// On success the result has exactly the length declared in the header.
func DecompressLZ(src []byte) ([]byte, error) {
	out, _, err := DecompressLZN(src)
	return out, err
}

// DecompressLZN decompresses one LZ77 block and returns the decoded slice,
// the number of input bytes consumed (nRead, header included), and an error.
// nRead is 0 on error. Use this when walking back-to-back blocks.
func DecompressLZN(src []byte) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	r := &sliceReader{src: src}
	out, err := decodeBlock(r, FormatLZ77)
	if err != nil {
		return nil, 0, err
	}

	return out, r.pos, nil
}

// DecompressLZFrom decompresses one LZ77 block read from r. It reads exactly
// the bytes of the block and nothing past it.
func DecompressLZFrom(r io.ByteReader) ([]byte, error) {
	return decodeBlock(r, FormatLZ77)
}

// LZBlockSize walks one LZ77 block from r without allocating its output and
// returns how many input bytes the block occupies.
func LZBlockSize(r io.ByteReader) (int, error) {
	return measureBlock(r, FormatLZ77)
}

// LZCompressedSize returns how many bytes of src the LZ77 block at its start
// occupies, or -1 if src does not hold a complete valid block.
func LZCompressedSize(src []byte) int {
	n, err := LZBlockSize(&sliceReader{src: src})
	if err != nil {
		return -1
	}

	return n
}

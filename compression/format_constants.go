// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

// Format is the tag byte that opens a BIOS compressed block.
type Format byte

// Block format tags.
const (
	FormatLZ77    Format = 0x10
	FormatHuffman Format = 0x20
	FormatRLE     Format = 0x30
)

// formatAny makes decodeBlock accept every supported tag.
const formatAny Format = 0

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatLZ77:
		return "LZ77"
	case FormatHuffman:
		return "Huffman"
	case FormatRLE:
		return "RLE"
	}
	return "unknown"
}

// Supported reports whether the package can decode blocks with this tag.
func (f Format) Supported() bool {
	return f == FormatLZ77 || f == FormatRLE
}

// Header layout.
const (
	headerSize = 4 // tag + 24-bit length

	// MaxDecompressedSize is the largest length the 24-bit header can declare.
	MaxDecompressedSize = 0xFFFFFF
)

// LZ token bounds.
const (
	lzGroupUnits = 8    // units per flag byte
	lzMinMatch   = 3    // shortest back-reference
	lzMaxMatch   = 18   // 4-bit length field + lzMinMatch
	lzWindowSize = 4096 // 12-bit displacement field + 1
	lzSeedLen    = 2    // leading bytes always emitted as literals
)

// RLE flag layout.
const (
	rleRunFlag     = 0x80
	rleLengthMask  = 0x7F
	rleMinRun      = 3 // compressed run: low7 + 3 repeats
	rleMinLiterals = 1 // literal run: low7 + 1 bytes
)

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

/*
Package compression implements the GBA BIOS block formats used by cartridge
ROM images: LZ77 (tag 0x10, LZSS token groups) and RLE (tag 0x30).

Every block starts with a 4-byte header: the format tag followed by the 24-bit
little-endian decompressed length. LZ bodies are groups of one flag byte and up
to eight units; a clear bit (MSB first) is one literal byte, a set bit is a
2-byte big-endian token holding length-3 in the high nibble and
displacement-1 in the low 12 bits.

Decoding is strict: a back-reference before the start of the output, a unit
that would pass the declared length, or input that ends early all fail with an
error that matches ErrCorruptData.

# Decompress

From a byte slice:

	out, err := compression.DecompressLZ(block)

To get the number of input bytes consumed (e.g. for back-to-back blocks):

	out, nRead, err := compression.DecompressLZN(block)

To measure a block in place without allocating its output:

	n := compression.LZCompressedSize(image[offset:]) // -1 if not a valid block

Any supported format, selected by the tag byte:

	out, err := compression.Decompress(block)
	out, err := compression.DecompressFrom(byteReader)

# Compress

Options may be nil (displacements 1..4096):

	block, err := compression.CompressLZ(data, nil)
	block, err := compression.CompressLZ(data, &compression.CompressOptions{VRAMSafe: true})
*/
package compression

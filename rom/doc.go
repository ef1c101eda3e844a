// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

/*
Package rom provides typed access to GBA cartridge images: the ROM pointer
model, a position-tracked little-endian Stream over a fixed-size Medium,
compressed block and pointer I/O, and whole-image search and repointing.

A ROM pointer is the logical offset plus BankBase (0x08000000), stored as a
4-byte little-endian value. Raw 0 is the null pointer; anything outside
[BankBase, BankBase+MaxOffset] is invalid and can never be written.

	s, err := rom.Open("firered.gba")
	if err != nil {
		return err
	}
	defer s.Close()

	s.Seek(0x3C8, io.SeekStart)
	p, err := s.ReadPointer()        // follow a table entry
	s.Seek(p.Offset(), io.SeekStart)
	tiles, err := s.ReadCompressed() // LZ77 or RLE block

	at, ok, err := s.FindFreeSpace(0x800, 0x700000, 4)
	moved, err := s.Repoint(p.Offset(), at)

Streams are not safe for concurrent use; one Stream owns its Medium at a time.
*/
package rom

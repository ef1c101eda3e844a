// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import (
	"fmt"
	"io"
)

// ReadPointer reads a 4-byte ROM pointer at the cursor.
func (s *Stream) ReadPointer() (Pointer, error) {
	raw, err := s.ReadU32()
	if err != nil {
		return ZeroPointer, err
	}
	return DecodePointer(raw), nil
}

// ReadPointerAndSeek reads a pointer and, if it is valid, moves the cursor to
// its target. For null and invalid pointers the cursor stays after the pointer.
func (s *Stream) ReadPointerAndSeek() (Pointer, error) {
	p, err := s.ReadPointer()
	if err != nil || !p.IsValid() {
		return p, err
	}

	if _, err := s.Seek(p.Offset(), io.SeekStart); err != nil {
		return p, err
	}
	return p, nil
}

// WritePointer writes p at the cursor. Invalid pointers fail with
// ErrInvalidPointer before any byte is written.
func (s *Stream) WritePointer(p Pointer) error {
	raw, err := p.Raw()
	if err != nil {
		return err
	}
	return s.WriteU32(raw)
}

// WriteOffset writes a pointer to offset at the cursor.
//
// Offset 0 is written as the null pointer, so the first byte of the ROM
// cannot be referenced through this call. Use WritePointer for that.
func (s *Stream) WriteOffset(offset int64) error {
	if offset == 0 {
		return s.WritePointer(ZeroPointer)
	}

	p, err := NewPointer(offset)
	if err != nil {
		return fmt.Errorf("write pointer at 0x%X: %w", s.pos, err)
	}
	return s.WritePointer(p)
}

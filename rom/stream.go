// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import (
	"bytes"
	"fmt"
	"io"
)

// FreeSpaceByte is the filler of unused ROM space.
const FreeSpaceByte = 0xFF

// Stream is a position-tracked little-endian reader/writer over a Medium.
// Every primitive advances the cursor by the bytes it consumed or produced.
type Stream struct {
	m    Medium
	pos  int64
	size int64
	buf  [8]byte // scratch for fixed-width values
}

// NewStream returns a Stream positioned at the start of m.
func NewStream(m Medium) *Stream {
	return &Stream{m: m, size: m.Size()}
}

// Open opens a ROM file for reading and writing.
func Open(name string) (*Stream, error) {
	f, err := OpenFile(name, true)
	if err != nil {
		return nil, err
	}

	return NewStream(f), nil
}

// OpenReadOnly opens a ROM file for reading only.
func OpenReadOnly(name string) (*Stream, error) {
	f, err := OpenFile(name, false)
	if err != nil {
		return nil, err
	}

	return NewStream(f), nil
}

// Medium returns the underlying medium.
func (s *Stream) Medium() Medium { return s.m }

// Len returns the medium length.
func (s *Stream) Len() int64 { return s.size }

// Position returns the cursor.
func (s *Stream) Position() int64 { return s.pos }

// AtEnd reports whether the cursor is at or past the end of the medium.
func (s *Stream) AtEnd() bool { return s.pos >= s.size }

// Remaining returns the bytes left after the cursor.
func (s *Stream) Remaining() int64 { return max(s.size-s.pos, 0) }

// IsValidOffset reports whether offset addresses a byte of the medium.
func (s *Stream) IsValidOffset(offset int64) bool {
	return offset >= 0 && offset < s.size
}

// Seek implements io.Seeker. The cursor may move past the end; it cannot move before the start.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.pos + offset
	case io.SeekEnd:
		target = s.size + offset
	default:
		return s.pos, fmt.Errorf("%w: whence %d", ErrInvalidArgument, whence)
	}

	if target < 0 {
		return s.pos, fmt.Errorf("%w: seek to negative position %d", ErrInvalidArgument, target)
	}

	s.pos = target
	return s.pos, nil
}

// Skip moves the cursor by delta bytes.
func (s *Stream) Skip(delta int64) (int64, error) {
	return s.Seek(delta, io.SeekCurrent)
}

// Close closes the medium if it is an io.Closer.
func (s *Stream) Close() error {
	if c, ok := s.m.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Flush commits written data when the medium supports it.
func (s *Stream) Flush() error {
	if f, ok := s.m.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}

// ReadAll returns a copy of the whole medium. The cursor is not moved.
func (s *Stream) ReadAll() ([]byte, error) {
	image := make([]byte, s.size)
	if err := s.readAt(image, 0); err != nil {
		return nil, err
	}

	return image, nil
}

// WriteAll overwrites the medium with image, which must have the medium's
// exact length. The cursor is not moved.
func (s *Stream) WriteAll(image []byte) error {
	if int64(len(image)) != s.size {
		return fmt.Errorf("%w: image is %d bytes, medium is %d", ErrInvalidArgument, len(image), s.size)
	}

	return s.writeAt(image, 0)
}

// MoveBlock copies n bytes from offset from to offset to and fills the
// source range with FreeSpaceByte; overlapping ranges are handled. The
// cursor is not moved.
func (s *Stream) MoveBlock(from, to int64, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}
	if !s.fits(from, n) || !s.fits(to, n) {
		return fmt.Errorf("%w: move of %d bytes from 0x%X to 0x%X", ErrEndOfStream, n, from, to)
	}

	block := make([]byte, n)
	if err := s.readAt(block, from); err != nil {
		return err
	}
	if err := s.writeAt(bytes.Repeat([]byte{FreeSpaceByte}, n), from); err != nil {
		return err
	}

	return s.writeAt(block, to)
}

// fits reports whether n bytes at off lie inside the medium.
func (s *Stream) fits(off int64, n int) bool {
	return off >= 0 && off+int64(n) <= s.size
}

// readAt fills p from the medium at off without touching the cursor.
func (s *Stream) readAt(p []byte, off int64) error {
	if !s.fits(off, len(p)) {
		return fmt.Errorf("%w: read of %d bytes at 0x%X", ErrEndOfStream, len(p), off)
	}

	n, err := s.m.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil || err == io.EOF {
		err = ErrEndOfStream
	}
	return fmt.Errorf("read of %d bytes at 0x%X: %w", len(p), off, err)
}

// writeAt writes p to the medium at off without touching the cursor.
func (s *Stream) writeAt(p []byte, off int64) error {
	if !s.fits(off, len(p)) {
		return fmt.Errorf("%w: write of %d bytes at 0x%X", ErrEndOfStream, len(p), off)
	}

	if _, err := s.m.WriteAt(p, off); err != nil {
		return fmt.Errorf("write of %d bytes at 0x%X: %w", len(p), off, err)
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// readFull fills p at the cursor and advances it. When fewer than len(p)
// bytes remain the cursor moves to the end of the medium, nothing is
// returned, and the error is ErrEndOfStream.
func (s *Stream) readFull(p []byte) error {
	if !s.fits(s.pos, len(p)) {
		at := s.pos
		s.pos = max(s.pos, s.size)
		return fmt.Errorf("%w: read of %d bytes at 0x%X", ErrEndOfStream, len(p), at)
	}

	if err := s.readAt(p, s.pos); err != nil {
		return err
	}

	s.pos += int64(len(p))
	return nil
}

// fill reads n bytes into the scratch buffer.
func (s *Stream) fill(n int) ([]byte, error) {
	b := s.buf[:n]
	if err := s.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Read implements io.Reader.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.AtEnd() {
		return 0, io.EOF
	}

	n := int(min(int64(len(p)), s.Remaining()))
	if err := s.readFull(p[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadByte implements io.ByteReader.
func (s *Stream) ReadByte() (byte, error) {
	b, err := s.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU8 reads an unsigned byte.
func (s *Stream) ReadU8() (uint8, error) {
	return s.ReadByte()
}

// ReadS8 reads a signed byte.
func (s *Stream) ReadS8() (int8, error) {
	b, err := s.ReadByte()
	return int8(b), err //nolint:gosec // G115: two's complement reinterpretation
}

// PeekByte returns the byte at the cursor without advancing.
func (s *Stream) PeekByte() (byte, error) {
	var b [1]byte
	if !s.fits(s.pos, 1) {
		return 0, fmt.Errorf("%w: peek at 0x%X", ErrEndOfStream, s.pos)
	}
	if err := s.readAt(b[:], s.pos); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (s *Stream) ReadU16() (uint16, error) {
	b, err := s.fill(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU24 reads a little-endian 24-bit value, as used by compressed block headers.
func (s *Stream) ReadU24() (uint32, error) {
	b, err := s.fill(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
}

// ReadU32 reads a little-endian uint32.
func (s *Stream) ReadU32() (uint32, error) {
	b, err := s.fill(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadS32 reads a little-endian int32.
func (s *Stream) ReadS32() (int32, error) {
	v, err := s.ReadU32()
	return int32(v), err //nolint:gosec // G115: two's complement reinterpretation
}

// ReadU64 reads a little-endian uint64.
func (s *Stream) ReadU64() (uint64, error) {
	b, err := s.fill(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadBytes reads n bytes into a new slice.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}

	b := make([]byte, n)
	if err := s.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadString reads an n-byte fixed-length field. The value ends at the first
// zero byte; the rest of the field is consumed but ignored.
func (s *Stream) ReadString(n int) (string, error) {
	b, err := s.ReadBytes(n)
	if err != nil {
		return "", err
	}

	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// writeFull writes p at the cursor and advances it. A write that does not
// fit writes nothing and leaves the cursor unchanged.
func (s *Stream) writeFull(p []byte) error {
	if err := s.writeAt(p, s.pos); err != nil {
		return err
	}

	s.pos += int64(len(p))
	return nil
}

// Write implements io.Writer. Unlike most writers it never writes partially:
// either all of p fits before the end of the medium or nothing is written.
func (s *Stream) Write(p []byte) (int, error) {
	if err := s.writeFull(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (s *Stream) WriteByte(v byte) error {
	s.buf[0] = v
	return s.writeFull(s.buf[:1])
}

// WriteU8 writes an unsigned byte.
func (s *Stream) WriteU8(v uint8) error {
	return s.WriteByte(v)
}

// WriteS8 writes a signed byte.
func (s *Stream) WriteS8(v int8) error {
	return s.WriteByte(byte(v)) //nolint:gosec // G115: two's complement reinterpretation
}

// WriteU16 writes a little-endian uint16.
func (s *Stream) WriteU16(v uint16) error {
	binary.LittleEndian.PutUint16(s.buf[:2], v)
	return s.writeFull(s.buf[:2])
}

// WriteU24 writes the low 24 bits of v little-endian.
func (s *Stream) WriteU24(v uint32) error {
	if v > 0xFFFFFF {
		return fmt.Errorf("%w: 0x%X does not fit 24 bits", ErrInvalidArgument, v)
	}

	s.buf[0], s.buf[1], s.buf[2] = byte(v), byte(v>>8), byte(v>>16)
	return s.writeFull(s.buf[:3])
}

// WriteU32 writes a little-endian uint32.
func (s *Stream) WriteU32(v uint32) error {
	binary.LittleEndian.PutUint32(s.buf[:4], v)
	return s.writeFull(s.buf[:4])
}

// WriteS32 writes a little-endian int32.
func (s *Stream) WriteS32(v int32) error {
	return s.WriteU32(uint32(v)) //nolint:gosec // G115: two's complement reinterpretation
}

// WriteU64 writes a little-endian uint64.
func (s *Stream) WriteU64(v uint64) error {
	binary.LittleEndian.PutUint64(s.buf[:8], v)
	return s.writeFull(s.buf[:8])
}

// WriteBytes writes b.
func (s *Stream) WriteBytes(b []byte) error {
	return s.writeFull(b)
}

// WriteFill writes n copies of v.
func (s *Stream) WriteFill(v byte, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}
	return s.writeFull(bytes.Repeat([]byte{v}, n))
}

// WriteString writes str as an n-byte fixed-length field: UTF-8 bytes
// truncated to n or padded with zero bytes.
func (s *Stream) WriteString(str string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}

	field := make([]byte, n)
	copy(field, str)
	return s.writeFull(field)
}

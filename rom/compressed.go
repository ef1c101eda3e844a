// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/woozymasta/gbahl/compression"
)

// blockReader is a buffered io.ByteReader over the medium starting at the
// cursor that counts the bytes handed out, so the cursor can be advanced by
// exactly the size of the block.
type blockReader struct {
	r *bufio.Reader
	n int
}

func (b *blockReader) ReadByte() (byte, error) {
	c, err := b.r.ReadByte()
	if err != nil {
		return 0, err
	}

	b.n++
	return c, nil
}

// blockReaderAt returns a blockReader over at most limit bytes from off.
func (s *Stream) blockReaderAt(off, limit int64) *blockReader {
	return &blockReader{r: bufio.NewReader(io.NewSectionReader(s.m, off, max(limit, 0)))}
}

// ReadCompressed reads the compressed block (LZ77 or RLE) at the cursor and
// advances past it. On a format mismatch the error matches
// compression.ErrFormat and the cursor stays on the tag byte.
func (s *Stream) ReadCompressed() ([]byte, error) {
	if s.AtEnd() {
		return nil, fmt.Errorf("%w: compressed block at 0x%X", ErrEndOfStream, s.pos)
	}

	start := s.pos
	br := s.blockReaderAt(start, s.Remaining())
	out, err := compression.DecompressFrom(br)
	if err != nil {
		if !errors.Is(err, compression.ErrFormat) {
			s.pos += int64(br.n)
		}
		return nil, fmt.Errorf("compressed block at 0x%X: %w", start, err)
	}

	s.pos += int64(br.n)
	return out, nil
}

// TryReadCompressed reads a compressed block if the byte at the cursor is a
// supported format tag. Otherwise it returns ok == false and consumes nothing;
// layouts use this for fields that may or may not be compressed.
func (s *Stream) TryReadCompressed() (out []byte, ok bool, err error) {
	tag, err := s.PeekByte()
	if err != nil {
		return nil, false, err
	}
	if !compression.Format(tag).Supported() {
		return nil, false, nil
	}

	out, err = s.ReadCompressed()
	if err != nil {
		return nil, true, err
	}
	return out, true, nil
}

// CompressedSize returns how many bytes the compressed block at offset at
// occupies, without decompressing it. The walk may read at most limit bytes
// (0 means up to the end of the medium). It returns -1 when there is no valid
// block within that bound. The cursor is not moved.
func (s *Stream) CompressedSize(at int64, limit int) int {
	if !s.IsValidOffset(at) || limit < 0 {
		return -1
	}

	bound := s.size - at
	if limit > 0 {
		bound = min(bound, int64(limit))
	}

	n, err := compression.BlockSize(s.blockReaderAt(at, bound))
	if err != nil {
		return -1
	}
	return n
}

// WriteCompressed LZ77-compresses data and writes the block at the cursor.
// opts may be nil. It returns the number of bytes written; nothing is written
// if the block does not fit before the end of the medium.
func (s *Stream) WriteCompressed(data []byte, opts *compression.CompressOptions) (int, error) {
	block, err := compression.CompressLZ(data, opts)
	if err != nil {
		return 0, err
	}

	if err := s.writeFull(block); err != nil {
		return 0, err
	}
	return len(block), nil
}

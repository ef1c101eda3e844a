// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

import (
	"errors"
	"fmt"
	"io"
)

// sink receives the units of a block body in order. The walkers check every
// unit against the declared length before handing it to the sink.
type sink interface {
	literal(b byte) error
	backRef(dist, length int) error
	fill(b byte, n int) error
}

// bufferSink materializes the decoded output.
type bufferSink struct {
	dst []byte
	pos int
}

func (s *bufferSink) literal(b byte) error {
	if s.pos >= len(s.dst) {
		return ErrOutputOverrun
	}

	s.dst[s.pos] = b
	s.pos++
	return nil
}

func (s *bufferSink) backRef(dist, length int) error {
	if err := copyBackRef(s.dst, s.pos, dist, length); err != nil {
		return err
	}

	s.pos += length
	return nil
}

func (s *bufferSink) fill(b byte, n int) error {
	if err := fillRun(s.dst, s.pos, b, n); err != nil {
		return err
	}

	s.pos += n
	return nil
}

// countSink discards the output; used to measure blocks in place.
type countSink struct{}

func (countSink) literal(byte) error     { return nil }
func (countSink) backRef(int, int) error { return nil }
func (countSink) fill(byte, int) error   { return nil }

// sliceReader is an io.ByteReader over a slice that remembers how much it consumed.
type sliceReader struct {
	src []byte
	pos int
}

func (r *sliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.src) {
		return 0, io.EOF
	}

	b := r.src[r.pos]
	r.pos++
	return b, nil
}

// countingReader counts the bytes consumed from an arbitrary io.ByteReader.
type countingReader struct {
	r io.ByteReader
	n int
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, err
	}

	c.n++
	return b, nil
}

// readByte reads one body byte and reports exhaustion as ErrInputOverrun.
func readByte(r io.ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err == nil {
		return b, nil
	}

	if errors.Is(err, io.EOF) {
		return 0, ErrInputOverrun
	}

	return 0, fmt.Errorf("%w: %w", ErrInputOverrun, err)
}

// readHeader reads the tag and the 24-bit decompressed length.
// want restricts the accepted tag unless it is formatAny.
func readHeader(r io.ByteReader, want Format) (Format, int, error) {
	tag, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, 0, ErrEmptyInput
		}
		return 0, 0, err
	}

	format := Format(tag)
	switch {
	case want != formatAny && format != want:
		return 0, 0, fmt.Errorf("%w: got 0x%02x, want 0x%02x (%s)", ErrFormat, tag, byte(want), want)
	case format == FormatHuffman:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	case !format.Supported():
		return 0, 0, fmt.Errorf("%w: 0x%02x", ErrFormat, tag)
	}

	var length int
	for shift := 0; shift < 24; shift += 8 {
		b, err := readByte(r)
		if err != nil {
			return 0, 0, err
		}
		length |= int(b) << shift
	}

	return format, length, nil
}

// walkBody dispatches to the body walker of the given format.
func walkBody(r io.ByteReader, format Format, outLen int, s sink) error {
	switch format {
	case FormatLZ77:
		return walkLZ(r, outLen, s)
	case FormatRLE:
		return walkRLE(r, outLen, s)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// walkLZ parses LZ token groups until outLen bytes are produced. The last flag
// byte does not have to be used up.
func walkLZ(r io.ByteReader, outLen int, s sink) error {
	produced := 0
	for produced < outLen {
		flags, err := readByte(r)
		if err != nil {
			return err
		}

		for bit := lzGroupUnits - 1; bit >= 0 && produced < outLen; bit-- {
			if flags>>bit&1 == 0 {
				b, err := readByte(r)
				if err != nil {
					return err
				}
				if err := s.literal(b); err != nil {
					return err
				}
				produced++
				continue
			}

			hi, err := readByte(r)
			if err != nil {
				return err
			}
			lo, err := readByte(r)
			if err != nil {
				return err
			}

			dist, length := parseToken(hi, lo)
			if dist > produced {
				return ErrLookBehindUnderrun
			}
			if produced+length > outLen {
				return ErrOutputOverrun
			}
			if err := s.backRef(dist, length); err != nil {
				return err
			}
			produced += length
		}
	}

	return nil
}

// walkRLE parses RLE runs until outLen bytes are produced.
func walkRLE(r io.ByteReader, outLen int, s sink) error {
	produced := 0
	for produced < outLen {
		flag, err := readByte(r)
		if err != nil {
			return err
		}

		n := int(flag & rleLengthMask)
		if flag&rleRunFlag != 0 {
			n += rleMinRun
			if produced+n > outLen {
				return ErrOutputOverrun
			}

			b, err := readByte(r)
			if err != nil {
				return err
			}
			if err := s.fill(b, n); err != nil {
				return err
			}
			produced += n
			continue
		}

		n += rleMinLiterals
		if produced+n > outLen {
			return ErrOutputOverrun
		}
		for j := 0; j < n; j++ {
			b, err := readByte(r)
			if err != nil {
				return err
			}
			if err := s.literal(b); err != nil {
				return err
			}
		}
		produced += n
	}

	return nil
}

// decodeBlock decodes one block from r into a new buffer of the declared length.
func decodeBlock(r io.ByteReader, want Format) ([]byte, error) {
	format, outLen, err := readHeader(r, want)
	if err != nil {
		return nil, err
	}

	s := &bufferSink{dst: make([]byte, outLen)}
	if err := walkBody(r, format, outLen, s); err != nil {
		return nil, err
	}

	return s.dst, nil
}

// measureBlock walks one block from r without producing output and returns
// the number of bytes it occupies, header included.
func measureBlock(r io.ByteReader, want Format) (int, error) {
	c := &countingReader{r: r}
	format, outLen, err := readHeader(c, want)
	if err != nil {
		return 0, err
	}

	if err := walkBody(c, format, outLen, countSink{}); err != nil {
		return 0, err
	}

	return c.n, nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import "io"

// Cartridge header fields.
const (
	headerTitleOffset = 0xA0
	headerTitleLen    = 12
	headerCodeLen     = 4
	headerMakerLen    = 2

	// bankSize is the size of one 16 MiB ROM bank; dumps are whole banks.
	bankSize = 0x1000000
)

// Header is the identification part of the cartridge header.
type Header struct {
	Title string // game title, up to 12 bytes
	Code  string // 4-byte game code, e.g. "BPRE"
	Maker string // 2-byte maker code, e.g. "01"
}

// ReadHeader reads the cartridge title, game code and maker code. The cursor is not moved.
func (s *Stream) ReadHeader() (Header, error) {
	var h Header
	err := s.at(headerTitleOffset, func() error {
		var err error
		if h.Title, err = s.ReadString(headerTitleLen); err != nil {
			return err
		}
		if h.Code, err = s.ReadString(headerCodeLen); err != nil {
			return err
		}
		h.Maker, err = s.ReadString(headerMakerLen)
		return err
	})
	return h, err
}

// WriteHeader writes the cartridge title, game code and maker code, padding
// or truncating each field. The cursor is not moved.
func (s *Stream) WriteHeader(h Header) error {
	if !s.fits(headerTitleOffset, headerTitleLen+headerCodeLen+headerMakerLen) {
		return ErrEndOfStream
	}

	return s.at(headerTitleOffset, func() error {
		if err := s.WriteString(h.Title, headerTitleLen); err != nil {
			return err
		}
		if err := s.WriteString(h.Code, headerCodeLen); err != nil {
			return err
		}
		return s.WriteString(h.Maker, headerMakerLen)
	})
}

// ValidSize reports whether n is a plausible ROM size: a non-zero multiple of 16 MiB.
func ValidSize(n int64) bool {
	return n > 0 && n%bankSize == 0
}

// at runs fn with the cursor at off and restores the cursor afterwards.
func (s *Stream) at(off int64, fn func() error) error {
	saved := s.pos
	defer func() { s.pos = saved }()

	if _, err := s.Seek(off, io.SeekStart); err != nil {
		return err
	}
	return fn()
}

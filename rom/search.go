// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import (
	"bytes"
	"fmt"
)

// Find returns the first offset from, from+alignment, ... at which pattern
// occurs. ok is false when there is no match. The cursor is not moved.
func (s *Stream) Find(pattern []byte, from int64, alignment int) (offset int64, ok bool, err error) {
	if err := s.checkSearch(len(pattern), from, alignment); err != nil {
		return 0, false, err
	}

	image, err := s.ReadAll()
	if err != nil {
		return 0, false, err
	}

	i := findPattern(image, pattern, int(from), alignment)
	if i < 0 {
		return 0, false, nil
	}
	return int64(i), true, nil
}

// FindRun returns the first offset from, from+alignment, ... that starts a run
// of count bytes equal to value. The cursor is not moved.
func (s *Stream) FindRun(value byte, count int, from int64, alignment int) (offset int64, ok bool, err error) {
	if count < 1 {
		return 0, false, fmt.Errorf("%w: run length %d", ErrInvalidArgument, count)
	}

	return s.Find(bytes.Repeat([]byte{value}, count), from, alignment)
}

// FindFreeSpace returns the first aligned offset at or after from where n
// bytes of FreeSpaceByte are available.
func (s *Stream) FindFreeSpace(n int, from int64, alignment int) (offset int64, ok bool, err error) {
	return s.FindRun(FreeSpaceByte, n, from, alignment)
}

// checkSearch validates the common search parameters.
func (s *Stream) checkSearch(patternLen int, from int64, alignment int) error {
	switch {
	case patternLen == 0:
		return fmt.Errorf("%w: empty search pattern", ErrInvalidArgument)
	case alignment < 1:
		return fmt.Errorf("%w: alignment %d", ErrInvalidArgument, alignment)
	case from < 0 || from > s.size:
		return fmt.Errorf("%w: search start 0x%X outside 0..0x%X", ErrInvalidArgument, from, s.size)
	}
	return nil
}

// findPattern scans image at from, from+alignment, ... and returns the first
// index where pattern starts, or -1.
func findPattern(image, pattern []byte, from, alignment int) int {
	if alignment == 1 {
		if i := bytes.Index(image[from:], pattern); i >= 0 {
			return from + i
		}
		return -1
	}

	for i := from; i+len(pattern) <= len(image); i += alignment {
		if bytes.Equal(image[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

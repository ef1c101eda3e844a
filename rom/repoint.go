// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/golang/glog"
)

// RepointImage rewrites every occurrence of the raw pointer to oldOffset in
// image with the raw pointer to newOffset and returns the patched offsets in
// ascending order. The scan is unaligned and resumes after each patched
// pointer. If there are no occurrences image is not modified.
func RepointImage(image []byte, oldOffset, newOffset int64) ([]int64, error) {
	oldRaw, newRaw, err := repointValues(oldOffset, newOffset)
	if err != nil {
		return nil, err
	}

	var key, repl [4]byte
	binary.LittleEndian.PutUint32(key[:], oldRaw)
	binary.LittleEndian.PutUint32(repl[:], newRaw)

	var patched []int64
	for i := 0; i+len(key) <= len(image); {
		j := bytes.Index(image[i:], key[:])
		if j < 0 {
			break
		}

		at := i + j
		copy(image[at:], repl[:])
		patched = append(patched, int64(at))
		i = at + len(key)
	}

	return patched, nil
}

// Repoint rewrites every pointer to oldOffset in the medium so that it points
// to newOffset, and returns the patched offsets. The whole image is read,
// patched in memory and written back in one pass; when nothing matches nothing
// is written. The cursor is not moved.
func (s *Stream) Repoint(oldOffset, newOffset int64) ([]int64, error) {
	if _, _, err := repointValues(oldOffset, newOffset); err != nil {
		return nil, err
	}

	image, err := s.ReadAll()
	if err != nil {
		return nil, err
	}

	patched, err := RepointImage(image, oldOffset, newOffset)
	if err != nil {
		return nil, err
	}
	if len(patched) == 0 {
		glog.V(1).Infof("repoint 0x%06X -> 0x%06X: no references", oldOffset, newOffset)
		return nil, nil
	}

	if err := s.WriteAll(image); err != nil {
		return nil, err
	}

	glog.V(1).Infof("repoint 0x%06X -> 0x%06X: %d references rewritten", oldOffset, newOffset, len(patched))
	return patched, nil
}

// repointValues validates both offsets and returns their raw pointer values.
func repointValues(oldOffset, newOffset int64) (oldRaw, newRaw uint32, err error) {
	oldPtr, err := NewPointer(oldOffset)
	if err != nil {
		return 0, 0, fmt.Errorf("repoint source: %w", err)
	}
	newPtr, err := NewPointer(newOffset)
	if err != nil {
		return 0, 0, fmt.Errorf("repoint target: %w", err)
	}

	oldRaw, _ = oldPtr.Raw()
	newRaw, _ = newPtr.Raw()
	return oldRaw, newRaw, nil
}

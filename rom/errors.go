// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import "errors"

// Sentinel errors for stream, pointer and search operations.
// Compressed block errors come from package compression unchanged.
var (
	// ErrEndOfStream is returned when a primitive needs more bytes than remain in the medium.
	ErrEndOfStream = errors.New("end of stream")
	// ErrInvalidPointer is returned when an offset or pointer lies outside the ROM address space.
	ErrInvalidPointer = errors.New("invalid pointer")
	// ErrInvalidArgument is returned for malformed call parameters (negative lengths,
	// empty patterns, bad alignment or offsets).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrReadOnly is returned when writing to a medium opened without write access.
	ErrReadOnly = errors.New("medium is read-only")
)

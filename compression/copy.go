// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

// copyBackRef copies length bytes from dst[outputPos-dist:] to dst[outputPos:].
// If dist < length, source and destination overlap; the copy must run byte by
// byte so that short displacements repeat already written output (a
// displacement of 1 is a run of the previous byte). The built-in copy does not
// handle overlapping regions where src precedes dst.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	mPos := outputPos - dist
	if dist <= 0 || mPos < 0 {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}

// fillRun writes n copies of b at dst[outputPos:].
func fillRun(dst []byte, outputPos int, b byte, n int) error {
	if outputPos+n > len(dst) {
		return ErrOutputOverrun
	}

	run := dst[outputPos : outputPos+n]
	for i := range run {
		run[i] = b
	}

	return nil
}

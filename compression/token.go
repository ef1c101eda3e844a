// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

// tokenBytes packs a back-reference into its 2-byte wire form: length-3 in the
// high nibble and displacement-1 in the low 12 bits, high byte first.
func tokenBytes(dist, length int) (hi, lo byte) {
	v := (length-lzMinMatch)<<12 | (dist - 1)
	// #nosec G115 -- token fields are bounded by lzMaxMatch and lzWindowSize.
	return byte(v >> 8 & 0xff), byte(v & 0xff)
}

// parseToken unpacks a 2-byte token into displacement and length.
func parseToken(hi, lo byte) (dist, length int) {
	v := int(hi)<<8 | int(lo)
	return v&0xfff + 1, v>>12 + lzMinMatch
}

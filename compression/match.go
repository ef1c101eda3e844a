// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

const (
	// matchChainSize must exceed lzWindowSize so that no chain link inside the
	// window is overwritten before the scan reaches it.
	matchChainSize = 2 * lzWindowSize
	matchChainMask = matchChainSize - 1
)

// matchFinder indexes every position of the input by its first two bytes.
// The key is the exact byte pair, so a chain lists precisely the positions
// whose first two bytes match, newest (nearest) first.
type matchFinder struct {
	src     []byte
	minDist int

	heads [1 << 16]int32        // chain head per 2-byte key (0 means empty, stored as pos+1)
	prev  [matchChainSize]int32 // previous position with the same key (stored as pos+1)
}

// head2 returns the 2-byte key for the given data.
func head2(data []byte) uint {
	return uint(data[1])<<8 | uint(data[0])
}

// insert adds pos to its chain. Positions without two bytes left cannot start a match.
func (m *matchFinder) insert(pos int) {
	if pos+1 >= len(m.src) {
		return
	}

	key := head2(m.src[pos:])
	m.prev[pos&matchChainMask] = m.heads[key]
	m.heads[key] = int32(pos + 1) //nolint:gosec // G115: input length bounded by MaxDecompressedSize
}

// find returns the longest match for the bytes at pos among the indexed
// positions at most lzWindowSize back. Candidates are visited in increasing
// displacement order and only a strictly longer match replaces the current
// one, so ties resolve to the nearest displacement. length is 0 when no
// match of at least lzMinMatch bytes exists.
func (m *matchFinder) find(pos int) (dist, length int) {
	src := m.src
	maxLen := min(lzMaxMatch, len(src)-pos)
	if maxLen < lzMinMatch {
		return 0, 0
	}

	for cand := int(m.heads[head2(src[pos:])]) - 1; cand >= 0; cand = int(m.prev[cand&matchChainMask]) - 1 {
		d := pos - cand
		if d > lzWindowSize {
			break
		}
		if d < m.minDist {
			continue
		}

		n := 2
		for n < maxLen && src[cand+n] == src[pos+n] {
			n++
		}

		if n > length {
			dist, length = d, n
			if n == maxLen {
				break
			}
		}
	}

	if length < lzMinMatch {
		return 0, 0
	}

	return dist, length
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

// CompressLZ compresses src into one LZ77 block. opts may be nil (displacements 1..4096).
//
// The parse is greedy: at every position the longest match of 3..18 bytes in
// the preceding 4096 bytes is taken, the nearest one on ties; otherwise one
// literal is emitted. The first two bytes are always literals.
func CompressLZ(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if len(src) < lzSeedLen {
		return nil, ErrInputTooShort
	}
	if len(src) > MaxDecompressedSize {
		return nil, ErrInputTooLarge
	}

	minDist := 1
	if opts.VRAMSafe {
		minDist = 2
	}

	mf := acquireMatchFinder(src, minDist)
	defer releaseMatchFinder(mf)

	// Worst case is all literals: one flag byte per 8 bytes of input.
	g := groupWriter{out: make([]byte, 0, headerSize+len(src)+(len(src)+lzGroupUnits-1)/lzGroupUnits)}
	n := len(src)
	g.out = append(g.out, byte(FormatLZ77), byte(n), byte(n>>8), byte(n>>16))

	for pos := 0; pos < lzSeedLen; pos++ {
		g.literal(src[pos])
		mf.insert(pos)
	}

	for pos := lzSeedLen; pos < n; {
		dist, length := mf.find(pos)
		if length < lzMinMatch {
			g.literal(src[pos])
			mf.insert(pos)
			pos++
			continue
		}

		if dist < minDist || dist > lzWindowSize || length > lzMaxMatch || pos+length > n {
			return nil, ErrCompressInternal
		}

		g.backRef(dist, length)
		for i := 0; i < length; i++ {
			mf.insert(pos + i)
		}
		pos += length
	}

	return g.out, nil
}

// groupWriter accumulates units behind their flag byte. A new flag byte is
// reserved when a unit starts a group, so a final partial group is left
// padded with zero bits.
type groupWriter struct {
	out     []byte
	flagPos int
	units   int
}

func (g *groupWriter) next(ref bool) {
	if g.units == 0 {
		g.flagPos = len(g.out)
		g.out = append(g.out, 0)
	}

	if ref {
		g.out[g.flagPos] |= 0x80 >> g.units
	}

	g.units = (g.units + 1) % lzGroupUnits
}

func (g *groupWriter) literal(b byte) {
	g.next(false)
	g.out = append(g.out, b)
}

func (g *groupWriter) backRef(dist, length int) {
	g.next(true)
	hi, lo := tokenBytes(dist, length)
	g.out = append(g.out, hi, lo)
}

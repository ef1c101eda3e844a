package compression

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	rng := rand.New(rand.NewSource(0x6ba))
	noise := make([]byte, 20000)
	rng.Read(noise)

	return []struct {
		name string
		data []byte
	}{
		{name: "two-bytes", data: []byte{0xAB, 0xCD}},
		{name: "three-bytes", data: []byte{0x01, 0x01, 0x01}},
		{name: "short-text", data: []byte("hello world, lz77 test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "tile-like", data: bytes.Repeat([]byte{0x11, 0x11, 0x21, 0x12, 0x00, 0x00, 0x00, 0x00}, 512)},
		{name: "noise", data: noise},
		{name: "window-edge", data: append(append(append([]byte{}, noise[:4096]...), noise[:64]...), noise[:64]...)},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		for _, vram := range []bool{false, true} {
			name := fmt.Sprintf("%s/vram-%t", in.name, vram)
			t.Run(name, func(t *testing.T) {
				cmp, err := CompressLZ(in.data, &CompressOptions{VRAMSafe: vram})
				if err != nil {
					t.Fatalf("CompressLZ failed: %v", err)
				}

				out, err := DecompressLZ(cmp)
				if err != nil {
					t.Fatalf("DecompressLZ failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
				}

				if n := LZCompressedSize(cmp); n != len(cmp) {
					t.Fatalf("LZCompressedSize = %d, want %d", n, len(cmp))
				}
			})
		}
	}
}

func TestCompress_Header(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := CompressLZ(in.data, nil)
			if err != nil {
				t.Fatalf("CompressLZ failed: %v", err)
			}

			n := len(in.data)
			want := []byte{0x10, byte(n), byte(n >> 8), byte(n >> 16)}
			if !bytes.Equal(cmp[:4], want) {
				t.Fatalf("header = % x, want % x", cmp[:4], want)
			}
		})
	}
}

func TestCompress_ExactOutput(t *testing.T) {
	// Six 0xAA bytes: two seeded literals, then one back-reference of length 4
	// at displacement 1 (or 2 when VRAM-safe, which only allows length 4 too).
	data := bytes.Repeat([]byte{0xAA}, 6)

	cmp, err := CompressLZ(data, nil)
	if err != nil {
		t.Fatalf("CompressLZ failed: %v", err)
	}
	want := []byte{0x10, 0x06, 0x00, 0x00, 0x20, 0xAA, 0xAA, 0x10, 0x00}
	if !bytes.Equal(cmp, want) {
		t.Fatalf("CompressLZ = % x, want % x", cmp, want)
	}

	cmp, err = CompressLZ(data, &CompressOptions{VRAMSafe: true})
	if err != nil {
		t.Fatalf("CompressLZ VRAM-safe failed: %v", err)
	}
	want = []byte{0x10, 0x06, 0x00, 0x00, 0x20, 0xAA, 0xAA, 0x10, 0x01}
	if !bytes.Equal(cmp, want) {
		t.Fatalf("CompressLZ VRAM-safe = % x, want % x", cmp, want)
	}
}

func TestCompress_FlagGroups(t *testing.T) {
	// Nine distinct bytes: one full literal group and a second group holding
	// a single literal padded with zero flag bits.
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	cmp, err := CompressLZ(data, nil)
	if err != nil {
		t.Fatalf("CompressLZ failed: %v", err)
	}

	want := []byte{0x10, 0x09, 0x00, 0x00, 0x00, 1, 2, 3, 4, 5, 6, 7, 8, 0x00, 9}
	if !bytes.Equal(cmp, want) {
		t.Fatalf("CompressLZ = % x, want % x", cmp, want)
	}
}

func TestCompress_VRAMSafeNeverUsesDisplacementOne(t *testing.T) {
	data := append(bytes.Repeat([]byte{0x00}, 300), bytes.Repeat([]byte{0x01, 0x01, 0x02}, 300)...)
	cmp, err := CompressLZ(data, &CompressOptions{VRAMSafe: true})
	if err != nil {
		t.Fatalf("CompressLZ failed: %v", err)
	}

	var dists []int
	probe := &probeSink{onBackRef: func(dist, _ int) { dists = append(dists, dist) }}
	if err := walkLZ(&sliceReader{src: cmp[headerSize:]}, len(data), probe); err != nil {
		t.Fatalf("walkLZ failed: %v", err)
	}

	if len(dists) == 0 {
		t.Fatal("expected back-references")
	}
	for _, d := range dists {
		if d < 2 {
			t.Fatalf("VRAM-safe output uses displacement %d", d)
		}
	}
}

func TestCompress_InvalidInput(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {0x01}} {
		_, err := CompressLZ(data, nil)
		if !errors.Is(err, ErrInputTooShort) || !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("len=%d: expected ErrInputTooShort, got %v", len(data), err)
		}
	}

	_, err := CompressLZ(make([]byte, MaxDecompressedSize+1), nil)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
}

func TestMatchFinder_PrefersNearestOnTies(t *testing.T) {
	// "xyz" occurs at 0 and 4; both give a 3-byte match for position 8.
	src := []byte("xyz_xyz_xyz")
	mf := acquireMatchFinder(src, 1)
	defer releaseMatchFinder(mf)

	for pos := 0; pos < 8; pos++ {
		mf.insert(pos)
	}

	dist, length := mf.find(8)
	if dist != 4 || length != 3 {
		t.Fatalf("find = (dist %d, len %d), want (4, 3)", dist, length)
	}
}

func TestMatchFinder_LongestWins(t *testing.T) {
	src := []byte("abcdX_abcZ_abcd")
	mf := acquireMatchFinder(src, 1)
	defer releaseMatchFinder(mf)

	for pos := 0; pos < 11; pos++ {
		mf.insert(pos)
	}

	dist, length := mf.find(11)
	if dist != 11 || length != 4 {
		t.Fatalf("find = (dist %d, len %d), want (11, 4)", dist, length)
	}
}

func BenchmarkCompressLZ(b *testing.B) {
	for name, data := range benchmarkInputSets() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := CompressLZ(data, nil); err != nil {
					b.Fatalf("CompressLZ failed: %v", err)
				}
			}
		})
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte("hi"), false)
	f.Add([]byte("hello world"), true)
	f.Add(bytes.Repeat([]byte{0x00}, 1024), false)
	f.Add(bytes.Repeat([]byte("abc"), 500), true)

	f.Fuzz(func(t *testing.T, data []byte, vram bool) {
		if len(data) < 2 {
			return
		}
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := CompressLZ(data, &CompressOptions{VRAMSafe: vram})
		if err != nil {
			t.Fatalf("CompressLZ failed: %v", err)
		}

		out, err := DecompressLZ(cmp)
		if err != nil {
			t.Fatalf("DecompressLZ failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}

package compression

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompressRLE(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []byte
	}{
		{
			name: "compressed-run",
			src:  []byte{0x30, 0x03, 0x00, 0x00, 0x80, 0x55},
			want: []byte{0x55, 0x55, 0x55},
		},
		{
			name: "literal-run",
			src:  []byte{0x30, 0x02, 0x00, 0x00, 0x01, 0x01, 0x02},
			want: []byte{0x01, 0x02},
		},
		{
			name: "mixed",
			src:  []byte{0x30, 0x07, 0x00, 0x00, 0x00, 0x09, 0x81, 0x00, 0x01, 0xA0, 0xA1},
			want: []byte{0x09, 0x00, 0x00, 0x00, 0x00, 0xA0, 0xA1},
		},
		{
			name: "longest-runs",
			src:  append([]byte{0x30, 0x02, 0x01, 0x00, 0xFF, 0xEE, 0x7F}, bytes.Repeat([]byte{0x11}, 128)...),
			want: append(bytes.Repeat([]byte{0xEE}, 130), bytes.Repeat([]byte{0x11}, 128)...),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := DecompressRLE(tc.src)
			if err != nil {
				t.Fatalf("DecompressRLE failed: %v", err)
			}
			if !bytes.Equal(out, tc.want) {
				t.Fatalf("DecompressRLE = % x, want % x", out, tc.want)
			}

			n, err := RLEBlockSize(bytes.NewReader(tc.src))
			if err != nil {
				t.Fatalf("RLEBlockSize failed: %v", err)
			}
			if n != len(tc.src) {
				t.Fatalf("RLEBlockSize = %d, want %d", n, len(tc.src))
			}
		})
	}
}

func TestDecompressRLE_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want error
	}{
		{name: "empty", src: nil, want: ErrEmptyInput},
		{name: "lz-tag", src: []byte{0x10, 0x01, 0x00, 0x00, 0x00, 0x01}, want: ErrFormat},
		{name: "missing-run-byte", src: []byte{0x30, 0x03, 0x00, 0x00, 0x80}, want: ErrInputOverrun},
		{name: "short-literals", src: []byte{0x30, 0x03, 0x00, 0x00, 0x02, 0x01}, want: ErrInputOverrun},
		{name: "run-past-length", src: []byte{0x30, 0x03, 0x00, 0x00, 0x81, 0x01}, want: ErrOutputOverrun},
		{name: "literals-past-length", src: []byte{0x30, 0x01, 0x00, 0x00, 0x01, 0x01, 0x02}, want: ErrOutputOverrun},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecompressRLE(tc.src)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDecompressRLEFrom_ReadsOnlyTheBlock(t *testing.T) {
	r := bytes.NewReader([]byte{0x30, 0x04, 0x00, 0x00, 0x81, 0x42, 0xFF})
	out, err := DecompressRLEFrom(r)
	if err != nil {
		t.Fatalf("DecompressRLEFrom failed: %v", err)
	}
	if !bytes.Equal(out, bytes.Repeat([]byte{0x42}, 4)) {
		t.Fatalf("DecompressRLEFrom = % x", out)
	}
	if r.Len() != 1 {
		t.Fatalf("reader has %d bytes left, want 1", r.Len())
	}
}

func TestFormat_String(t *testing.T) {
	for f, want := range map[Format]string{
		FormatLZ77:    "LZ77",
		FormatHuffman: "Huffman",
		FormatRLE:     "RLE",
		Format(0x40):  "unknown",
	} {
		if got := f.String(); got != want {
			t.Errorf("Format(0x%02x).String() = %q, want %q", byte(f), got, want)
		}
	}
}

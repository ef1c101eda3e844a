// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package compression

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lz77 benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"tiles-32k":       bytes.Repeat([]byte{0x00, 0x11, 0x11, 0x00, 0x10, 0x22, 0x22, 0x01}, 4096),
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressedData, err := CompressLZ(inputData, nil)
		if err != nil {
			b.Fatalf("CompressLZ failed: %v", err)
		}
		if _, err = DecompressLZ(compressedData); err != nil {
			b.Fatalf("DecompressLZ failed: %v", err)
		}
	}
}

func BenchmarkLZCompressedSize(b *testing.B) {
	compressedData, err := CompressLZ(bytes.Repeat([]byte("measure"), 8192), nil)
	if err != nil {
		b.Fatalf("setup CompressLZ failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if LZCompressedSize(compressedData) != len(compressedData) {
			b.Fatal("size mismatch")
		}
	}
}

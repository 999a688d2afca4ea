// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package yay0

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":    bytes.Repeat([]byte("yay0 benchmark payload text "), 160),
		"pattern-128k":     bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"already-small-32": []byte("no repetition whatsoever here!!"),
	}
}

func BenchmarkCompress(b *testing.B) {
	for name, input := range benchmarkInputSets() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Compress(input, nil); err != nil {
					b.Fatalf("Compress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for name, input := range benchmarkInputSets() {
		compressed, err := Compress(input, nil)
		if err != nil {
			b.Fatalf("setup Compress failed for %s: %v", name, err)
		}
		opts := DefaultDecompressOptions(len(input))

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decompress(compressed, opts); err != nil {
					b.Fatalf("Decompress failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	input := bytes.Repeat([]byte("RoundTripData"), 16384)
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressed, err := Compress(input, nil)
		if err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
		if _, err := Decompress(compressed, DefaultDecompressOptions(len(input))); err != nil {
			b.Fatalf("Decompress failed: %v", err)
		}
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package yay0

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retrolz/n64lz/errcode"
)

func testCorpus() map[string][]byte {
	return map[string][]byte{
		"empty":        {},
		"single-byte":  {0xAB},
		"repeated-run": bytes.Repeat([]byte("A"), 8),
		"alternating":  []byte("ABABABAB"),
		"long-run-19":  bytes.Repeat([]byte{0x5A}, 19),
		"text":         []byte("the quick brown fox jumps over the lazy dog"),
		"binary-cycle": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 40),
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	for name, raw := range testCorpus() {
		t.Run(name, func(t *testing.T) {
			compressed, err := Compress(raw, nil)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if got, want := len(compressed), CompressBound(len(raw)); got > want {
				t.Fatalf("compressed length %d exceeds CompressBound %d", got, want)
			}

			bound, err := DecompressBound(compressed)
			if err != nil {
				t.Fatalf("DecompressBound: %v", err)
			}
			if bound != len(raw) {
				t.Fatalf("DecompressBound = %d, want %d", bound, len(raw))
			}

			out, err := Decompress(compressed, DefaultDecompressOptions(bound))
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(out, raw) {
				t.Fatalf("round trip mismatch:\n got  %x\n want %x", out, raw)
			}
		})
	}
}

// S5-equivalent: section offsets in the header are absolute, 4-byte
// aligned, and point at the three independently laid-out sections.
func TestHeaderOffsetsAreAlignedAndOrdered(t *testing.T) {
	raw := bytes.Repeat([]byte("A"), 8)
	compressed, err := Compress(raw, nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(compressed) < 16 {
		t.Fatalf("compressed stream shorter than header: %d", len(compressed))
	}

	size := uint32(compressed[4])<<24 | uint32(compressed[5])<<16 | uint32(compressed[6])<<8 | uint32(compressed[7])
	backRefOff := uint32(compressed[8])<<24 | uint32(compressed[9])<<16 | uint32(compressed[10])<<8 | uint32(compressed[11])
	literalOff := uint32(compressed[12])<<24 | uint32(compressed[13])<<16 | uint32(compressed[14])<<8 | uint32(compressed[15])

	if int(size) != len(raw) {
		t.Fatalf("header size = %d, want %d", size, len(raw))
	}
	if backRefOff%4 != 0 || literalOff%4 != 0 {
		t.Fatalf("offsets not 4-byte aligned: backref=%d literal=%d", backRefOff, literalOff)
	}
	if backRefOff < 16 || literalOff < backRefOff {
		t.Fatalf("offsets out of order: backref=%d literal=%d", backRefOff, literalOff)
	}
	if int(literalOff) > len(compressed) {
		t.Fatalf("literal offset %d beyond stream length %d", literalOff, len(compressed))
	}
	// The literal section for a single-run input holds exactly the one
	// leading literal byte ('A').
	if compressed[literalOff] != 'A' {
		t.Fatalf("literal section does not start with the expected literal byte: %x", compressed[literalOff])
	}
}

func TestDecompressRejectsBadMagic(t *testing.T) {
	_, err := Decompress([]byte("Mio0\x00\x00\x00\x00\x00\x00\x00\x10\x00\x00\x00\x10"), DefaultDecompressOptions(0))
	if !errors.Is(err, errcode.ErrInvalidYay0Header) {
		t.Fatalf("got %v, want ErrInvalidYay0Header", err)
	}
}

func TestDecompressSkipsMagicValidationWhenRequested(t *testing.T) {
	compressed, err := Compress(bytes.Repeat([]byte("A"), 8), nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	compressed[0] = 'X'

	opts := DefaultDecompressOptions(8)
	opts.SkipMagicValidation = true
	if _, err := Decompress(compressed, opts); err != nil {
		t.Fatalf("Decompress with SkipMagicValidation: %v", err)
	}
}

func TestDecompressRejectsUnalignedOffsets(t *testing.T) {
	// backRefOffset = 17 (not a multiple of 4)
	header := []byte("Yay0\x00\x00\x00\x00\x00\x00\x00\x11\x00\x00\x00\x14")
	_, err := Decompress(header, DefaultDecompressOptions(0))
	if !errors.Is(err, errcode.ErrUnalignedRead) {
		t.Fatalf("got %v, want ErrUnalignedRead", err)
	}
}

func TestDecompressRejectsOversizedHeaderClaim(t *testing.T) {
	header := []byte("Yay0\xff\xff\xff\xff\x00\x00\x00\x10\x00\x00\x00\x10")
	_, err := Decompress(header, DefaultDecompressOptions(4096))
	if !errors.Is(err, errcode.ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
}

func TestDecompressRejectsUndersizedCapacity(t *testing.T) {
	raw := bytes.Repeat([]byte("capacity-probe"), 16)
	compressed, err := Compress(raw, nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	if _, err := Decompress(compressed, DefaultDecompressOptions(len(raw))); err != nil {
		t.Fatalf("Decompress with exact capacity failed: %v", err)
	}
	if _, err := Decompress(compressed, DefaultDecompressOptions(len(raw)-1)); !errors.Is(err, errcode.ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
}

// FuzzCompressDecompressRoundTrip exercises spec.md §8's foundational
// round-trip property, seeded the way the teacher's
// FuzzCompressDecompressRoundTrip is, plus a single-byte run that puts every
// position on one hash chain of the shared match finder.
func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))
	f.Add(bytes.Repeat([]byte{0x5A}, 4096))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		compressed, err := Compress(data, nil)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(compressed, DefaultDecompressOptions(len(data)))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d bytes", len(out), len(data))
		}
	})
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package gzip

import (
	"bytes"
	stdgzip "compress/gzip"
	"errors"
	"io"
	"testing"

	"github.com/retrolz/n64lz/errcode"
)

func TestCompressProducesCompleteGzipStream(t *testing.T) {
	src := bytes.Repeat([]byte("gzip wrapper round trip probe"), 500)

	for _, level := range []int{4, 6, 9} {
		for _, smallMem := range []bool{false, true} {
			out, err := Compress(src, level, smallMem)
			if err != nil {
				t.Fatalf("level=%d smallMem=%v: Compress: %v", level, smallMem, err)
			}

			r, err := stdgzip.NewReader(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("level=%d smallMem=%v: NewReader: %v (stream missing a valid gzip header)", level, smallMem, err)
			}
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("level=%d smallMem=%v: ReadAll: %v", level, smallMem, err)
			}
			if !bytes.Equal(got, src) {
				t.Fatalf("level=%d smallMem=%v: round trip mismatch", level, smallMem)
			}

			if got, want := len(out), CompressBound(len(src)); got > want {
				t.Fatalf("level=%d: compressed length %d exceeds CompressBound %d", level, got, want)
			}
		}
	}
}

func TestCompressRejectsInvalidLevel(t *testing.T) {
	_, err := Compress([]byte("x"), 0, false)
	if !errors.Is(err, errcode.ErrInvalidCompressionLevel) {
		t.Fatalf("got %v, want ErrInvalidCompressionLevel", err)
	}
}

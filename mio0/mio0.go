// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package mio0

import (
	"github.com/retrolz/n64lz/errcode"
	"github.com/retrolz/n64lz/internal/splitcodec"
)

var magic = [4]byte{'M', 'I', 'O', '0'}

func checkMagic(b []byte) error {
	if len(b) < 4 || b[0] != magic[0] || b[1] != magic[1] || b[2] != magic[2] || b[3] != magic[3] {
		return errcode.ErrInvalidMio0Header
	}
	return nil
}

// Compress encodes raw into a complete MIO0 stream, header included. opts
// may be nil (uses DefaultCompressOptions).
func Compress(raw []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	return splitcodec.Compress(magic, raw)
}

// CompressBound returns an upper bound on Compress's output length for an
// input of rawLen bytes.
func CompressBound(rawLen int) int {
	return splitcodec.CompressBound(rawLen)
}

// DecompressBound reads only the MIO0 header and returns the required
// output buffer capacity.
func DecompressBound(compressed []byte) (int, error) {
	if err := checkMagic(compressed); err != nil {
		return 0, err
	}
	h, err := splitcodec.ParseHeader(compressed)
	if err != nil {
		return 0, err
	}
	return h.UncompressedSize, nil
}

// Decompress decodes a MIO0 stream into a buffer of capacity
// opts.OutCap. It fails with errcode.ErrOutOfBounds before writing any byte
// if that capacity is smaller than the header's declared uncompressed size.
// opts may be nil, which behaves like DefaultDecompressOptions(0).
func Decompress(compressed []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions(0)
	}
	if !opts.SkipMagicValidation {
		if err := checkMagic(compressed); err != nil {
			return nil, err
		}
	}
	h, err := splitcodec.ParseHeader(compressed)
	if err != nil {
		return nil, err
	}
	return splitcodec.Decompress(compressed, h, opts.OutCap)
}

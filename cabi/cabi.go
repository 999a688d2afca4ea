// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package cabi

import (
	"errors"

	"github.com/retrolz/n64lz/errcode"
	"github.com/retrolz/n64lz/gzip"
	"github.com/retrolz/n64lz/mio0"
	"github.com/retrolz/n64lz/yay0"
	"github.com/retrolz/n64lz/yaz0"
)

// codeOf down-converts a core error into its stable numeric Code. nil maps
// to Okay; anything the core packages didn't tag with an *errcode.Error
// (which should not happen on this module's own error paths) falls back to
// OutOfBounds, the most conservative classification.
func codeOf(err error) errcode.Code {
	if err == nil {
		return errcode.Okay
	}
	var ce *errcode.Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return errcode.OutOfBounds
}

// Yaz0DecompressBound mirrors crunch64_yaz0_decompress_bound: it reads only
// the header and reports the required output capacity.
func Yaz0DecompressBound(src []byte) (int, errcode.Code) {
	if src == nil {
		return 0, errcode.NullPointer
	}
	n, err := yaz0.DecompressBound(src)
	return n, codeOf(err)
}

// Yaz0Decompress mirrors crunch64_yaz0_decompress. dstCap is the caller's
// buffer capacity (the C side's in/out size_t, taken here as a plain `in`
// value per spec.md's re-architecture note); the returned slice length is
// the "out" half of that convention.
func Yaz0Decompress(src []byte, dstCap int) ([]byte, errcode.Code) {
	if src == nil {
		return nil, errcode.NullPointer
	}
	out, err := yaz0.Decompress(src, yaz0.DefaultDecompressOptions(dstCap))
	return out, codeOf(err)
}

// Yaz0CompressBound mirrors crunch64_yaz0_compress_bound.
func Yaz0CompressBound(src []byte) int {
	return yaz0.CompressBound(len(src))
}

// Yaz0Compress mirrors crunch64_yaz0_compress.
func Yaz0Compress(src []byte) ([]byte, errcode.Code) {
	if src == nil {
		return nil, errcode.NullPointer
	}
	out, err := yaz0.Compress(src, nil)
	return out, codeOf(err)
}

// Yay0DecompressBound mirrors the Yay0 equivalent of
// crunch64_yaz0_decompress_bound.
func Yay0DecompressBound(src []byte) (int, errcode.Code) {
	if src == nil {
		return 0, errcode.NullPointer
	}
	n, err := yay0.DecompressBound(src)
	return n, codeOf(err)
}

// Yay0Decompress mirrors the Yay0 equivalent of crunch64_yaz0_decompress.
func Yay0Decompress(src []byte, dstCap int) ([]byte, errcode.Code) {
	if src == nil {
		return nil, errcode.NullPointer
	}
	out, err := yay0.Decompress(src, yay0.DefaultDecompressOptions(dstCap))
	return out, codeOf(err)
}

// Yay0CompressBound mirrors the Yay0 equivalent of
// crunch64_yaz0_compress_bound.
func Yay0CompressBound(src []byte) int {
	return yay0.CompressBound(len(src))
}

// Yay0Compress mirrors the Yay0 equivalent of crunch64_yaz0_compress.
func Yay0Compress(src []byte) ([]byte, errcode.Code) {
	if src == nil {
		return nil, errcode.NullPointer
	}
	out, err := yay0.Compress(src, nil)
	return out, codeOf(err)
}

// Mio0DecompressBound mirrors the MIO0 equivalent of
// crunch64_yaz0_decompress_bound.
func Mio0DecompressBound(src []byte) (int, errcode.Code) {
	if src == nil {
		return 0, errcode.NullPointer
	}
	n, err := mio0.DecompressBound(src)
	return n, codeOf(err)
}

// Mio0Decompress mirrors the MIO0 equivalent of crunch64_yaz0_decompress.
func Mio0Decompress(src []byte, dstCap int) ([]byte, errcode.Code) {
	if src == nil {
		return nil, errcode.NullPointer
	}
	out, err := mio0.Decompress(src, mio0.DefaultDecompressOptions(dstCap))
	return out, codeOf(err)
}

// Mio0CompressBound mirrors the MIO0 equivalent of
// crunch64_yaz0_compress_bound.
func Mio0CompressBound(src []byte) int {
	return mio0.CompressBound(len(src))
}

// Mio0Compress mirrors the MIO0 equivalent of crunch64_yaz0_compress.
func Mio0Compress(src []byte) ([]byte, errcode.Code) {
	if src == nil {
		return nil, errcode.NullPointer
	}
	out, err := mio0.Compress(src, nil)
	return out, codeOf(err)
}

// GzipCompressBound mirrors crunch64_gzip_compress_bound.
func GzipCompressBound(src []byte) int {
	return gzip.CompressBound(len(src))
}

// GzipCompress mirrors crunch64_gzip_compress.
func GzipCompress(src []byte, level int, smallMem bool) ([]byte, errcode.Code) {
	if src == nil {
		return nil, errcode.NullPointer
	}
	out, err := gzip.Compress(src, level, smallMem)
	return out, codeOf(err)
}

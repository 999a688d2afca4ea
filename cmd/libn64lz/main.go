// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

// Command libn64lz builds the C-ABI shared library surface described in
// SPEC_FULL.md §6, on top of package cabi. Build with:
//
//	go build -buildmode=c-shared -o libn64lz.so ./cmd/libn64lz
//
// Every exported function follows the historical C convention: a length
// pointer that is both the caller's declared capacity on entry and the
// actual bytes written on success, plus a numeric Crunch64Error-style
// return code. No algorithmic content lives here; every call forwards
// straight into package cabi.
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/retrolz/n64lz/cabi"
	"github.com/retrolz/n64lz/errcode"
)

func goBytes(ptr *C.uint8_t, n C.size_t) []byte {
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(n))
}

func writeOut(dst *C.uint8_t, dstLen *C.size_t, out []byte) errcode.Code {
	if dst == nil || dstLen == nil {
		return errcode.NullPointer
	}
	if C.size_t(len(out)) > *dstLen {
		return errcode.OutOfBounds
	}
	if len(out) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(dst)), len(out)), out)
	}
	*dstLen = C.size_t(len(out))
	return errcode.Okay
}

//export n64lz_yaz0_decompress_bound
func n64lz_yaz0_decompress_bound(dstSize *C.size_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstSize == nil {
		return C.int(errcode.NullPointer)
	}
	n, code := cabi.Yaz0DecompressBound(goBytes(src, srcLen))
	if code == errcode.Okay {
		*dstSize = C.size_t(n)
	}
	return C.int(code)
}

//export n64lz_yaz0_decompress
func n64lz_yaz0_decompress(dstLen *C.size_t, dst *C.uint8_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstLen == nil {
		return C.int(errcode.NullPointer)
	}
	out, code := cabi.Yaz0Decompress(goBytes(src, srcLen), int(*dstLen))
	if code != errcode.Okay {
		return C.int(code)
	}
	return C.int(writeOut(dst, dstLen, out))
}

//export n64lz_yaz0_compress_bound
func n64lz_yaz0_compress_bound(dstSize *C.size_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstSize == nil {
		return C.int(errcode.NullPointer)
	}
	*dstSize = C.size_t(cabi.Yaz0CompressBound(goBytes(src, srcLen)))
	return C.int(errcode.Okay)
}

//export n64lz_yaz0_compress
func n64lz_yaz0_compress(dstLen *C.size_t, dst *C.uint8_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstLen == nil {
		return C.int(errcode.NullPointer)
	}
	out, code := cabi.Yaz0Compress(goBytes(src, srcLen))
	if code != errcode.Okay {
		return C.int(code)
	}
	return C.int(writeOut(dst, dstLen, out))
}

//export n64lz_yay0_decompress_bound
func n64lz_yay0_decompress_bound(dstSize *C.size_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstSize == nil {
		return C.int(errcode.NullPointer)
	}
	n, code := cabi.Yay0DecompressBound(goBytes(src, srcLen))
	if code == errcode.Okay {
		*dstSize = C.size_t(n)
	}
	return C.int(code)
}

//export n64lz_yay0_decompress
func n64lz_yay0_decompress(dstLen *C.size_t, dst *C.uint8_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstLen == nil {
		return C.int(errcode.NullPointer)
	}
	out, code := cabi.Yay0Decompress(goBytes(src, srcLen), int(*dstLen))
	if code != errcode.Okay {
		return C.int(code)
	}
	return C.int(writeOut(dst, dstLen, out))
}

//export n64lz_yay0_compress_bound
func n64lz_yay0_compress_bound(dstSize *C.size_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstSize == nil {
		return C.int(errcode.NullPointer)
	}
	*dstSize = C.size_t(cabi.Yay0CompressBound(goBytes(src, srcLen)))
	return C.int(errcode.Okay)
}

//export n64lz_yay0_compress
func n64lz_yay0_compress(dstLen *C.size_t, dst *C.uint8_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstLen == nil {
		return C.int(errcode.NullPointer)
	}
	out, code := cabi.Yay0Compress(goBytes(src, srcLen))
	if code != errcode.Okay {
		return C.int(code)
	}
	return C.int(writeOut(dst, dstLen, out))
}

//export n64lz_mio0_decompress_bound
func n64lz_mio0_decompress_bound(dstSize *C.size_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstSize == nil {
		return C.int(errcode.NullPointer)
	}
	n, code := cabi.Mio0DecompressBound(goBytes(src, srcLen))
	if code == errcode.Okay {
		*dstSize = C.size_t(n)
	}
	return C.int(code)
}

//export n64lz_mio0_decompress
func n64lz_mio0_decompress(dstLen *C.size_t, dst *C.uint8_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstLen == nil {
		return C.int(errcode.NullPointer)
	}
	out, code := cabi.Mio0Decompress(goBytes(src, srcLen), int(*dstLen))
	if code != errcode.Okay {
		return C.int(code)
	}
	return C.int(writeOut(dst, dstLen, out))
}

//export n64lz_mio0_compress_bound
func n64lz_mio0_compress_bound(dstSize *C.size_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstSize == nil {
		return C.int(errcode.NullPointer)
	}
	*dstSize = C.size_t(cabi.Mio0CompressBound(goBytes(src, srcLen)))
	return C.int(errcode.Okay)
}

//export n64lz_mio0_compress
func n64lz_mio0_compress(dstLen *C.size_t, dst *C.uint8_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstLen == nil {
		return C.int(errcode.NullPointer)
	}
	out, code := cabi.Mio0Compress(goBytes(src, srcLen))
	if code != errcode.Okay {
		return C.int(code)
	}
	return C.int(writeOut(dst, dstLen, out))
}

//export n64lz_gzip_compress_bound
func n64lz_gzip_compress_bound(dstSize *C.size_t, srcLen C.size_t, src *C.uint8_t) C.int {
	if dstSize == nil {
		return C.int(errcode.NullPointer)
	}
	*dstSize = C.size_t(cabi.GzipCompressBound(goBytes(src, srcLen)))
	return C.int(errcode.Okay)
}

//export n64lz_gzip_compress
func n64lz_gzip_compress(dstLen *C.size_t, dst *C.uint8_t, srcLen C.size_t, src *C.uint8_t, level C.int, smallMem C.int) C.int {
	if dstLen == nil {
		return C.int(errcode.NullPointer)
	}
	out, code := cabi.GzipCompress(goBytes(src, srcLen), int(level), smallMem != 0)
	if code != errcode.Okay {
		return C.int(code)
	}
	return C.int(writeOut(dst, dstLen, out))
}

func main() {}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package gzip

import (
	"bytes"
	stdgzip "compress/gzip"

	"github.com/retrolz/n64lz/errcode"
)

// smallMemFlushChunk is the block size Compress flushes at when smallMem is
// requested: more frequent, smaller DEFLATE blocks trade compression ratio
// for lower peak buffering, matching the level/small_mem knobs the original
// C adapter exposes.
const smallMemFlushChunk = 32 * 1024

// Compress produces a complete gzip stream (header, DEFLATE blocks, CRC32
// and size footer) for src at the given level (4-9, matching the range the
// N64 tooling this wraps historically exposed). If smallMem is true, the
// writer is flushed every 32 KiB instead of once at the end.
func Compress(src []byte, level int, smallMem bool) ([]byte, error) {
	if level < 4 || level > 9 {
		return nil, errcode.ErrInvalidCompressionLevel
	}

	var buf bytes.Buffer
	w, err := stdgzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}

	if !smallMem {
		if _, err := w.Write(src); err != nil {
			return nil, err
		}
	} else {
		for off := 0; off < len(src); off += smallMemFlushChunk {
			end := off + smallMemFlushChunk
			if end > len(src) {
				end = len(src)
			}
			if _, err := w.Write(src[off:end]); err != nil {
				return nil, err
			}
			if err := w.Flush(); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressBound returns a safe upper bound on Compress's output length for
// an input of srcLen bytes: DEFLATE's own worst-case stored-block expansion,
// the extra framing of the smallMem flushes, and the fixed gzip
// header/footer overhead.
func CompressBound(srcLen int) int {
	// Stored (uncompressed) DEFLATE blocks expand by 5 bytes per 65535-byte
	// block in the worst case, and Close ends the stream with one more final
	// block of at most 5 bytes. With smallMem, every 32 KiB flush can end a
	// stored block early and appends a 5-byte sync marker. gzip adds a fixed
	// 18 bytes of header/footer.
	blocks := srcLen/65535 + 1
	flushes := srcLen/smallMemFlushChunk + 1
	return srcLen + blocks*5 + 5 + flushes*10 + 18
}

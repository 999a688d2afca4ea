// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package yaz0

import (
	"github.com/retrolz/n64lz/errcode"
	"github.com/retrolz/n64lz/internal/lzcore"
)

const headerSize = 16

var magic = [4]byte{'Y', 'a', 'z', '0'}

func checkMagic(b []byte) error {
	if len(b) < 4 || b[0] != magic[0] || b[1] != magic[1] || b[2] != magic[2] || b[3] != magic[3] {
		return errcode.ErrInvalidYaz0Header
	}
	return nil
}

// Compress encodes raw into a complete Yaz0 stream: 16-byte header followed
// by the interleaved flag/payload body. opts may be nil (uses
// DefaultCompressOptions).
func Compress(raw []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	flags, backrefs, literals, tokenCount, err := lzcore.Encode(raw)
	if err != nil {
		return nil, err
	}
	body := interleave(flags, backrefs, literals, tokenCount)

	out := make([]byte, headerSize+len(body))
	copy(out[0:4], magic[:])
	putU32(out[4:8], uint32(len(raw)))
	// out[8:16] stays zero (reserved).
	copy(out[headerSize:], body)
	return out, nil
}

// CompressBound returns an upper bound on Compress's output length for an
// input of rawLen bytes.
func CompressBound(rawLen int) int {
	return lzcore.CompressBound(rawLen, headerSize)
}

// DecompressBound reads only the Yaz0 header and returns the required
// output buffer capacity.
func DecompressBound(compressed []byte) (int, error) {
	if err := checkMagic(compressed); err != nil {
		return 0, err
	}
	r := lzcore.NewReader(compressed)
	if _, err := r.Slice(4); err != nil {
		return 0, err
	}
	size, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return int(size), nil
}

// Decompress decodes a Yaz0 stream into a buffer of capacity
// opts.OutCap. It fails with errcode.ErrOutOfBounds before writing any byte
// if that capacity is smaller than the header's declared uncompressed size.
// opts may be nil, which behaves like DefaultDecompressOptions(0) (any
// stream with a non-zero declared size then fails the bounds check below).
func Decompress(compressed []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions(0)
	}
	if !opts.SkipMagicValidation {
		if err := checkMagic(compressed); err != nil {
			return nil, err
		}
	}
	if len(compressed) < headerSize {
		return nil, errcode.ErrOutOfBounds
	}

	r := lzcore.NewReader(compressed)
	if _, err := r.Slice(4); err != nil {
		return nil, err
	}
	sizeU32, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	uncompressedSize := int(sizeU32)
	if uncompressedSize > opts.OutCap {
		return nil, errcode.ErrOutOfBounds
	}
	if _, err := r.Slice(8); err != nil { // reserved bytes
		return nil, err
	}

	body := lzcore.NewReader(compressed[headerSize:])
	out := make([]byte, uncompressedSize)
	w := lzcore.NewWriter(out)
	// The interleaved layout means flag bytes, back-reference bytes and
	// literal bytes all come from the same cursor, in stream order.
	if err := lzcore.Decode(body, body, body, uncompressedSize, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// interleave re-threads the three independent streams Encode produced back
// into Yaz0's single body: one flag byte, then the payload bytes of each of
// the up-to-eight tokens it governs. The flag bits themselves say which
// stream each token's bytes come from, so no extra bookkeeping is needed.
func interleave(flags, backrefs, literals []byte, tokenCount int) []byte {
	body := make([]byte, 0, len(flags)+len(backrefs)+len(literals))

	literalPos, backrefPos, tokenIdx := 0, 0, 0
	for _, flagByte := range flags {
		body = append(body, flagByte)
		for bit := 7; bit >= 0 && tokenIdx < tokenCount; bit-- {
			if flagByte>>uint(bit)&1 == 1 {
				body = append(body, literals[literalPos])
				literalPos++
			} else {
				n := 2
				if backrefs[backrefPos]>>4 == 0 {
					n = 3
				}
				body = append(body, backrefs[backrefPos:backrefPos+n]...)
				backrefPos += n
			}
			tokenIdx++
		}
	}
	return body
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package splitcodec

import (
	"github.com/retrolz/n64lz/errcode"
	"github.com/retrolz/n64lz/internal/lzcore"
)

// HeaderSize is the fixed on-disk header length for both Yay0 and MIO0.
const HeaderSize = 16

// Header is the decoded, format-agnostic split-layout header. Magic
// validation and the header-invalid error variant (InvalidYay0Header vs
// InvalidMio0Header) are the caller's job, since that's the one thing that
// differs between the two formats.
type Header struct {
	UncompressedSize int
	BackRefOffset    int
	LiteralOffset    int
}

func align4(n int) int {
	return (n + 3) &^ 3
}

// ParseHeader reads the 16-byte header and validates that both section
// offsets are in range, in order (back-references before literals) and
// 4-byte aligned. It does not touch the body.
func ParseHeader(compressed []byte) (Header, error) {
	if len(compressed) < HeaderSize {
		return Header{}, errcode.ErrOutOfBounds
	}

	r := lzcore.NewReader(compressed)
	if _, err := r.Slice(4); err != nil { // magic, validated by the caller
		return Header{}, err
	}
	sizeU32, err := r.ReadU32()
	if err != nil {
		return Header{}, err
	}
	backRefU32, err := r.ReadU32()
	if err != nil {
		return Header{}, err
	}
	literalU32, err := r.ReadU32()
	if err != nil {
		return Header{}, err
	}

	h := Header{
		UncompressedSize: int(sizeU32),
		BackRefOffset:    int(backRefU32),
		LiteralOffset:    int(literalU32),
	}

	if h.BackRefOffset%4 != 0 || h.LiteralOffset%4 != 0 {
		return Header{}, errcode.ErrUnalignedRead
	}
	if h.BackRefOffset < HeaderSize || h.BackRefOffset > len(compressed) ||
		h.LiteralOffset < HeaderSize || h.LiteralOffset > len(compressed) ||
		h.LiteralOffset < h.BackRefOffset {
		return Header{}, errcode.ErrOutOfBounds
	}

	return h, nil
}

// Decompress reconstructs the decoded bytes given an already-validated
// header. outCap is the caller-declared output buffer capacity; the
// declared uncompressed size is checked against it before any byte is
// written, per the format's bounds-safety requirement.
func Decompress(compressed []byte, h Header, outCap int) ([]byte, error) {
	if h.UncompressedSize > outCap {
		return nil, errcode.ErrOutOfBounds
	}

	flags := lzcore.NewReader(compressed[HeaderSize:h.BackRefOffset])
	backrefs := lzcore.NewReader(compressed[h.BackRefOffset:h.LiteralOffset])
	literals := lzcore.NewReader(compressed[h.LiteralOffset:])

	out := make([]byte, h.UncompressedSize)
	w := lzcore.NewWriter(out)
	if err := lzcore.Decode(flags, backrefs, literals, h.UncompressedSize, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Compress produces a full split-layout stream: header with magic, followed
// by the 4-byte-aligned flags/back-reference/literal sections.
func Compress(magic [4]byte, input []byte) ([]byte, error) {
	flags, backrefs, literals, _, err := lzcore.Encode(input)
	if err != nil {
		return nil, err
	}

	backRefOffset := HeaderSize + align4(len(flags))
	literalOffset := backRefOffset + align4(len(backrefs))
	total := literalOffset + align4(len(literals))

	out := make([]byte, total)
	copy(out[0:4], magic[:])
	putU32(out[4:8], uint32(len(input)))
	putU32(out[8:12], uint32(backRefOffset))
	putU32(out[12:16], uint32(literalOffset))

	copy(out[HeaderSize:], flags)
	copy(out[backRefOffset:], backrefs)
	copy(out[literalOffset:], literals)

	return out, nil
}

// CompressBound is the closed-form worst-case compressed size for an input
// of inputLen bytes, including header and inter-section alignment padding.
func CompressBound(inputLen int) int {
	return lzcore.CompressBound(inputLen, HeaderSize) + 8 // two extra alignment gaps vs Yaz0's single stream
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

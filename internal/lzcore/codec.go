// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package lzcore

import "github.com/retrolz/n64lz/errcode"

// ByteSource is anything Decode can pull the next raw byte from: a plain
// cursor over one interleaved stream (Yaz0), or one of three independently
// positioned cursors over split sections (Yay0, MIO0).
type ByteSource interface {
	ReadByte() (byte, error)
}

// Encode runs the match finder with one-step lazy look-ahead over input and
// returns three independent byte streams:
//
//   - flags: one bit per token, MSB first, packed 8 to a byte. 1 is a
//     literal, 0 a back-reference. The final byte's unused low-order bits
//     (beyond tokenCount) are left 0.
//   - backrefs: the short/long-form encoding (EncodeBackRef) of every
//     back-reference token, concatenated in order.
//   - literals: the raw byte of every literal token, concatenated in order.
//
// A container serialiser either interleaves these per flag-byte group
// (Yaz0) or lays them out as three separate sections (Yay0, MIO0); Encode
// itself is agnostic to layout.
func Encode(input []byte) (flags, backrefs, literals []byte, tokenCount int, err error) {
	if len(input) == 0 {
		return nil, nil, nil, 0, nil
	}

	m := newMatcher(input)

	var curFlag byte
	bitsInGroup := 0

	flushIfFull := func() {
		if bitsInGroup == 8 {
			flags = append(flags, curFlag)
			curFlag = 0
			bitsInGroup = 0
		}
	}

	pos := 0
	for pos < len(input) {
		// Index everything before pos, but not pos itself yet: find(pos)
		// must not be able to match against its own position.
		m.insertUpTo(pos)
		dist, length, ok := m.find(pos)

		if ok && pos+1 < len(input) {
			// Lazy match: index pos so the look-ahead at pos+1 can
			// reference it (distance 1), then re-run the search one byte
			// later. A strictly longer match there wins, and pos is
			// emitted as a literal instead.
			m.insertUpTo(pos + 1)
			_, length2, ok2 := m.find(pos + 1)
			if ok2 && length2 > length {
				ok = false
			}
		}

		if ok {
			backrefs = append(backrefs, EncodeBackRef(dist, length)...)
			// Bit stays 0 (back-reference); only literal bits are set.
			bitsInGroup++
			flushIfFull()
			tokenCount++

			m.insertUpTo(pos + length)
			pos += length
			continue
		}

		m.insertUpTo(pos + 1)
		curFlag |= 1 << (7 - bitsInGroup)
		literals = append(literals, input[pos])
		bitsInGroup++
		flushIfFull()
		tokenCount++
		pos++
	}

	if bitsInGroup > 0 {
		flags = append(flags, curFlag)
	}

	return flags, backrefs, literals, tokenCount, nil
}

// Decode reconstructs outLen bytes of output into w, reading flag bytes from
// flags and token payloads from backrefs/literals. It stops as soon as w has
// produced outLen bytes, even mid flag-byte or mid back-reference group,
// since any remaining flag bits are declared padding.
func Decode(flags, backrefs, literals ByteSource, outLen int, w *Writer) error {
	for w.Pos() < outLen {
		flagByte, err := flags.ReadByte()
		if err != nil {
			return err
		}

		for bit := 7; bit >= 0 && w.Pos() < outLen; bit-- {
			if flagByte>>uint(bit)&1 == 1 {
				b, err := literals.ReadByte()
				if err != nil {
					return err
				}
				if err := w.WriteByte(b); err != nil {
					return err
				}
				continue
			}

			distance, length, err := DecodeBackRef(backrefs)
			if err != nil {
				return err
			}
			if distance > MaxDistance {
				return errcode.ErrOutOfBounds
			}
			if err := w.CopyBack(distance, length); err != nil {
				return err
			}
		}
	}

	return nil
}

// EncodeBackRef serialises a back-reference per the shared on-wire grammar:
// two bytes for length 3-17 (upper nibble of the first byte carries
// length-2, never 0), three bytes for length 18-273 (first byte's upper
// nibble forced to 0, signalling the extended form).
func EncodeBackRef(distance, length int) []byte {
	d := distance - 1

	if length <= shortFormMaxLength {
		b0 := byte(length-2)<<4 | byte(d>>8&0x0F)
		b1 := byte(d & 0xFF)
		return []byte{b0, b1}
	}

	b0 := byte(d >> 8 & 0x0F)
	b1 := byte(d & 0xFF)
	b2 := byte(length - 18)
	return []byte{b0, b1, b2}
}

// DecodeBackRef reads one back-reference (short or long form) from src.
func DecodeBackRef(src ByteSource) (distance, length int, err error) {
	b0, err := src.ReadByte()
	if err != nil {
		return 0, 0, err
	}

	if b0>>4 == 0 {
		b1, err := src.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		b2, err := src.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		distance = (int(b0&0x0F)<<8 | int(b1)) + 1
		length = int(b2) + 18
		return distance, length, nil
	}

	b1, err := src.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	length = int(b0>>4) + 2
	distance = (int(b0&0x0F)<<8 | int(b1)) + 1
	return distance, length, nil
}

// CompressBound returns the closed-form worst-case compressed size for an
// input of inputLen bytes: one flag bit per literal byte in the worst case
// (all literals), rounded up, plus headerSize bytes of container header.
func CompressBound(inputLen, headerSize int) int {
	return (inputLen*9+7)/8 + headerSize + 4 // +4 covers alignment padding
}

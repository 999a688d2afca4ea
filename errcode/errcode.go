// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

/*
Package errcode carries the stable numeric error taxonomy shared by the
Yaz0, Yay0, MIO0 and gzip adapters, and the Go-level sentinel errors built on
top of it.

The numeric order is fixed for C-ABI compatibility: a caller crossing into
cgo reads Error.Code, not the Go error text. Two entries, UnsupportedCompressionType
and Vpk0, are reserved for formats outside this module's scope and are never
produced here; they keep their numeric position so the taxonomy stays stable
if those formats are added later.
*/
package errcode

import "fmt"

// Code is a stable numeric error identifier for C-ABI callers.
type Code int

// Fixed order; do not reorder existing entries.
const (
	Okay Code = iota
	InvalidYay0Header
	InvalidYaz0Header
	InvalidMio0Header
	UnsupportedCompressionType // reserved, not produced by this module
	UnalignedRead
	ByteConversion
	OutOfBounds
	NullPointer
	InvalidCompressionLevel
	Vpk0 // reserved, not produced by this module
)

func (c Code) String() string {
	switch c {
	case Okay:
		return "Okay"
	case InvalidYay0Header:
		return "InvalidYay0Header"
	case InvalidYaz0Header:
		return "InvalidYaz0Header"
	case InvalidMio0Header:
		return "InvalidMio0Header"
	case UnsupportedCompressionType:
		return "UnsupportedCompressionType"
	case UnalignedRead:
		return "UnalignedRead"
	case ByteConversion:
		return "ByteConversion"
	case OutOfBounds:
		return "OutOfBounds"
	case NullPointer:
		return "NullPointer"
	case InvalidCompressionLevel:
		return "InvalidCompressionLevel"
	case Vpk0:
		return "Vpk0"
	default:
		return "Unknown"
	}
}

// Error pairs a stable Code with a descriptive message. Callers that only
// care about Go semantics can use errors.Is against the package-level
// sentinels below; callers crossing a C ABI read Code directly.
type Error struct {
	Code Code
	msg  string
}

func (e *Error) Error() string { return e.msg }

func newError(code Code, msg string) *Error {
	return &Error{Code: code, msg: msg}
}

// Sentinel errors, one per non-Okay taxonomy entry this module produces.
var (
	ErrInvalidYay0Header       = newError(InvalidYay0Header, "invalid yay0 header")
	ErrInvalidYaz0Header       = newError(InvalidYaz0Header, "invalid yaz0 header")
	ErrInvalidMio0Header       = newError(InvalidMio0Header, "invalid mio0 header")
	ErrUnalignedRead           = newError(UnalignedRead, "unaligned section offset")
	ErrByteConversion          = newError(ByteConversion, "value does not fit the target integer width")
	ErrOutOfBounds             = newError(OutOfBounds, "read or write crossed a buffer boundary")
	ErrNullPointer             = newError(NullPointer, "null pointer passed across the C ABI")
	ErrInvalidCompressionLevel = newError(InvalidCompressionLevel, "invalid compression level")
)

// Wrap reports err with additional context while preserving its Code for
// errors.As/errors.Is callers walking the chain.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if as, ok := err.(*Error); ok {
		ce = as
	}
	if ce == nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return fmt.Errorf("%s: %w", context, ce)
}

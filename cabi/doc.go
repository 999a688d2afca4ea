// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

/*
Package cabi is the thin adapter between this module's idiomatic Go API
(yaz0, yay0, mio0, gzip) and the stable, numerically-ordered error taxonomy
a C caller needs (errcode.Code). It holds no algorithmic content: every
function here forwards straight into the core packages and down-converts
the result.

cmd/libn64lz builds the actual cgo-exported shared library surface on top
of this package; cabi itself stays pure Go so it can be unit tested without
a cgo toolchain.
*/
package cabi

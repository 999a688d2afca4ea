// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

/*
Package splitcodec implements the split-section container layout shared by
Yay0 and MIO0: a 16-byte header followed by three 4-byte-aligned regions
(flags, back-references, literals). The two formats differ only in their
4-byte magic, so both wrap this one serialiser/deserialiser rather than
duplicating it (per the source format's own recommendation).
*/
package splitcodec

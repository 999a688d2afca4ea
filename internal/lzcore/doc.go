// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

/*
Package lzcore implements the shared LZSS engine behind Yaz0, Yay0 and MIO0:
a bounded reader/writer pair, a hash-chain match finder with lazy-match
look-ahead, and the token codec that turns a byte buffer into a stream of
literal and back-reference tokens (and back again).

Container packages (yaz0, yay0, mio0) own header parsing and stream layout;
this package owns the LZ model itself, so the three containers can share one
bit-exact implementation of the back-reference grammar.
*/
package lzcore

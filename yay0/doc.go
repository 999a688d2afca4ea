// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

/*
Package yay0 implements the Yay0 container: a 16-byte header ("Yay0",
uncompressed size, back-reference section offset, literal section offset)
followed by three 4-byte-aligned sections holding the packed flag bytes,
the back-reference bytes and the raw literal bytes produced by the shared
LZ engine.

	compressed, err := yay0.Compress(raw, nil)
	out, err := yay0.Decompress(compressed, yay0.DefaultDecompressOptions(len(raw)))
*/
package yay0

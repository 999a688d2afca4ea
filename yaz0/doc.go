// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

/*
Package yaz0 implements the Yaz0 container: a 16-byte header ("Yaz0",
uncompressed size, 8 reserved zero bytes) followed by a body that
interleaves one flag byte with the up-to-eight literal/back-reference
payloads it governs, repeated to end of stream.

	compressed, err := yaz0.Compress(raw, nil)
	out, err := yaz0.Decompress(compressed, yaz0.DefaultDecompressOptions(len(raw)))
*/
package yaz0

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

/*
Package gzip wraps the standard library's DEFLATE implementation for the
cases where N64 tooling stores gzip instead of one of the LZ container
formats. It has no algorithmic content of its own; it only bridges between
this module's (data, error) calling convention and compress/gzip.
*/
package gzip

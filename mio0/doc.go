// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

// Package mio0 implements the MIO0 container: the same split-section
// layout as Yay0 (see package yay0), distinguished only by its "MIO0"
// magic. It shares splitcodec's serialiser/deserialiser rather than
// duplicating Yay0's implementation.
package mio0

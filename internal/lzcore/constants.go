// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package lzcore

// Back-reference bounds shared by Yaz0, Yay0 and MIO0.
const (
	MaxDistance = 4096 // widest back-reference distance (12-bit field)
	MinMatch    = 3    // shortest back-reference length
	MaxMatch    = 273  // longest back-reference length (4-bit field, extended form)

	// shortFormMaxLength is the longest match the 2-byte encoding can carry;
	// lengths beyond it require the 3-byte extended form.
	shortFormMaxLength = 17
)

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrolz
// Source: github.com/retrolz/n64lz

package lzcore

// matcher finds the longest usable back-reference at a position using a
// hash chain over 3-byte prefixes (MinMatch == 3), in the spirit of the
// sliding-window dictionary the teacher library uses for LZO1X-999 — but
// collapsed to this format's single match class (one offset/length pair,
// not LZO's M1-M4 split) since the back-reference grammar here has only one
// shape to satisfy.
type matcher struct {
	input []byte
	head  []int32 // hash -> most recent position+1, 0 == empty
	prev  []int32 // position -> previous position with same hash, +1

	nextInsert int // positions below this are already indexed
}

const (
	hashBits      = 15
	hashSize      = 1 << hashBits
	maxChainSteps = 128 // bounds worst-case search time on pathological input
)

func newMatcher(input []byte) *matcher {
	return &matcher{
		input: input,
		head:  make([]int32, hashSize),
		prev:  make([]int32, len(input)),
	}
}

func hash3(b []byte) uint32 {
	h := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	h *= 2654435761
	return h >> (32 - hashBits)
}

// insertUpTo indexes every not-yet-indexed position below pos so later
// searches can reference them. Positions are indexed lazily (rather than
// eagerly, one per loop iteration) so the encoder can insert an entire
// matched run in one call.
func (m *matcher) insertUpTo(pos int) {
	for m.nextInsert < pos {
		p := m.nextInsert
		if p+MinMatch <= len(m.input) {
			h := hash3(m.input[p:])
			m.prev[p] = m.head[h]
			m.head[h] = int32(p + 1)
		}
		m.nextInsert++
	}
}

// matchLength returns how many bytes input[a:] and input[b:] agree on,
// capped at limit (an absolute input index, not a count).
func matchLength(input []byte, a, b, limit int) int {
	n := 0
	for b+n < limit && input[a+n] == input[b+n] {
		n++
	}
	return n
}

// find returns the best (distance, length) back-reference usable at pos, or
// ok == false if no match of at least MinMatch bytes exists. Ties on length
// resolve to the smallest distance: the hash chain is walked most-recent
// first, so the first candidate to reach a given length already holds the
// smallest distance among candidates found so far, and only a strictly
// longer match replaces it.
func (m *matcher) find(pos int) (distance, length int, ok bool) {
	input := m.input
	if pos+MinMatch > len(input) {
		return 0, 0, false
	}

	limit := pos + MaxMatch
	if limit > len(input) {
		limit = len(input)
	}
	minPos := pos - MaxDistance
	if minPos < 0 {
		minPos = 0
	}

	h := hash3(input[pos:])
	cand := int(m.head[h]) - 1
	bestLen := 0
	bestDist := 0

	for steps := 0; cand >= minPos && cand < pos && steps < maxChainSteps; steps++ {
		l := matchLength(input, cand, pos, limit)
		if l > bestLen {
			bestLen = l
			bestDist = pos - cand
			if bestLen >= MaxMatch {
				break
			}
		}
		cand = int(m.prev[cand]) - 1
	}

	if bestLen < MinMatch {
		return 0, 0, false
	}
	return bestDist, bestLen, true
}

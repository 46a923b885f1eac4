// SPDX-License-Identifier: MIT

package rng

// Generator is a seeded 31-bit linear congruential generator.
// The zero value is a valid generator seeded with 0.
type Generator struct {
	state uint32
}

// New returns a generator whose state is exactly seed. Every uint32 is a
// valid seed, including 0.
func New(seed uint32) *Generator {
	return &Generator{state: seed}
}

// Reseed overwrites the state. Draws after Reseed(s) are identical to the
// draws of New(s), whatever happened before.
func (g *Generator) Reseed(seed uint32) {
	g.state = seed
}

// Next advances the state and returns it. The result is always in [0, 2^31).
//
// Complexity: O(1).
func (g *Generator) Next() uint32 {
	g.state = (Multiplier*g.state + Increment) & Mask
	return g.state
}

// Range returns lo + Next() mod (hi−lo+1), a value in [lo, hi].
// If hi < lo it returns ErrInvalidRange without advancing the state.
//
// For spans wider than 2^31 the draw is never reduced, so only
// [lo, lo+2^31) is reachable; solver ranges are far below that.
//
// Complexity: O(1).
func (g *Generator) Range(lo, hi int) (int, error) {
	if hi < lo {
		return 0, rngErrorf(methodRange, "[%d, %d]", ErrInvalidRange, lo, hi)
	}

	// Two's-complement difference is exact for any lo ≤ hi; a zero span
	// means the full 64-bit domain.
	span := uint64(hi) - uint64(lo) + 1
	r := uint64(g.Next())
	if span == 0 {
		return lo + int(r), nil
	}

	return lo + int(r%span), nil
}

// Float64 returns Next() scaled into [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.Next()) / (1 << 31)
}

// Perm returns a permutation of 0..n-1: the identity shuffled by ShuffleFunc.
// n == 0 yields an empty, non-nil slice.
//
// Complexity: O(n) time, O(n) space.
func (g *Generator) Perm(n int) ([]int, error) {
	if n < 0 {
		return nil, rngErrorf(methodPerm, "n=%d", ErrInvalidLength, n)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(g, p)

	return p, nil
}

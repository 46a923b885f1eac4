// SPDX-License-Identifier: MIT

// Package rng provides the deterministic pseudo-random stream that drives every
// stochastic decision of the lvlrand solvers: tie-breaking, bounded index
// draws, and in-place shuffles of candidate lists.
//
// Overview:
//
//   - Generator holds a single 32-bit state word and advances it with the
//     linear congruential recurrence
//
//     state = (1103515245·state + 12345) mod 2^31
//
//     computed with uint32 wraparound multiplication followed by a 31-bit mask.
//   - Range(lo, hi) returns lo + Next() mod (hi−lo+1).
//   - Shuffle / ShuffleFunc run a backward Fisher–Yates pass, drawing
//     k = Next() mod (i+1) for i = n−1 … 1 and swapping positions k and i.
//
// The sole contract is reproducibility: two generators built from the same seed
// and driven through the same calls yield identical values at every step, on
// every platform. Statistical quality is NOT a goal. The low bits of this LCG
// are weak (bit 0 alternates, bit k has period 2^(k+1)) and that behavior is
// preserved on purpose, because stored solver runs depend on the exact stream.
//
// Mask vs. modulo:
//
//	Some implementations of this recurrence write "% 2147483648" instead of
//	"& 0x7FFFFFFF". For unsigned 32-bit operands the two are the same number,
//	so only the masked form ships; the tests keep the modulo form as a
//	reference and compare both over long streams.
//
// Errors (sentinel):
//
//	– ErrInvalidRange   if Range is called with hi < lo.
//	– ErrInvalidLength  if Perm is called with n < 0.
//
// Concurrency:
//
//   - Generator is NOT safe for concurrent use; every call mutates state.
//   - Give each goroutine its own instance via Derive, or share one stream
//     through Locked.
//
// Example usage:
//
//	g := rng.New(8008)
//	v, err := g.Range(10, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	order := []int{0, 1, 2, 3}
//	rng.Shuffle(g, order)
package rng

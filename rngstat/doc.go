// Package rngstat inspects an rng.Generator stream without changing it.
//
// It answers the questions a solver author asks before trusting a seeded run:
// how evenly does Range spread over a bucket set, how correlated are
// successive draws, how short is the period of the low bits, and how biased
// is the position of an element after Shuffle.
//
// The LCG behind rng is known to be weak in its low bits. These reports make
// that weakness visible; they never "fix" it, since solver runs must stay
// bit-identical to the recurrence.
//
// Statistics come from gonum (χ² distribution, correlation) and
// montanaflynn/stats (summary moments).
package rngstat

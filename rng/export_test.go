// SPDX-License-Identifier: MIT

package rng

// Test bridge: exposes the "% 2147483648" formulation of the recurrence and
// the seed mixer to rng_test only.

// NextModulo_TestOnly advances g with the modulo form instead of the mask.
func NextModulo_TestOnly(g *Generator) uint32 {
	g.state = (Multiplier*g.state + Increment) % 2147483648
	return g.state
}

// MixSeed_TestOnly is mixSeed.
func MixSeed_TestOnly(parent, stream uint64) uint64 {
	return mixSeed(parent, stream)
}

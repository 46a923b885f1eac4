// SPDX-License-Identifier: MIT

package rng

// Derive returns a new, independent generator for the given stream id.
//
// The parent advances by exactly one Next(); that value is mixed with stream
// through a SplitMix64 finalizer and the high 32 bits become the child seed.
// Consuming a parent draw keeps two Derive calls with the same stream id from
// producing identical children.
//
// Usage: derive all children during setup, in a fixed order, before handing
// them to goroutines. The set of child streams then depends only on the
// parent seed and the stream ids.
//
// Complexity: O(1).
func (g *Generator) Derive(stream uint64) *Generator {
	return New(uint32(mixSeed(uint64(g.Next()), stream) >> 32))
}

// mixSeed is the SplitMix64 finalizer applied to parent ⊕ (stream + γ).
func mixSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// SPDX-License-Identifier: MIT

package rng

// ShuffleFunc permutes n elements in place through swap, using one backward
// Fisher–Yates pass: for i = n−1 down to 1 it draws k = Next() mod (i+1) and
// calls swap(k, i). For n ≤ 1 nothing is drawn.
//
// swap is called even when k == i, so callers see exactly n−1 calls.
//
// Complexity: O(n) time, O(1) extra space.
func (g *Generator) ShuffleFunc(n int, swap func(i, j int)) {
	var i, k int
	for i = n - 1; i > 0; i-- {
		k = int(uint64(g.Next()) % uint64(i+1))
		swap(k, i)
	}
}

// Shuffle permutes s in place. The multiset of elements is unchanged.
func Shuffle[T any](g *Generator, s []T) {
	g.ShuffleFunc(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Package tsp - tour utilities that work on index sequences only.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: closed tour rotated to a start vertex.
//   - ValidateTour: Hamiltonian-cycle invariants.
//   - CopyTour, EqualToursModuloRotation.
//   - reverseArcInPlace, canonicalizeOrientation: 2-opt internals.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation rotates perm so that start comes first and closes
// the cycle. The result has length n+1 and does not alias perm.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var at int
	for at = 0; at < n; at++ {
		if perm[at] == start {
			break
		}
	}
	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = perm[(at+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// ValidateTour enforces len(tour) == n+1, tour[0] == tour[n] == start and
// that every vertex of [0, n) appears exactly once in tour[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// CopyTour returns an independent copy; nil stays nil.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualToursModuloRotation reports whether two closed tours describe the same
// directed cycle, whatever vertex each starts at.
//
// Complexity: O(n).
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	if a[n] != a[0] || b[n] != b[0] {
		return false
	}

	p := -1
	for j := 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// reverseArcInPlace reverses tour[i..k] (inclusive).
func reverseArcInPlace(tour []int, i, k int) error {
	if i < 0 || k >= len(tour) || i > k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}

// canonicalizeOrientation fixes the traversal direction of a closed symmetric
// tour so that tour[1] < tour[n-1]. Both directions have the same cost; the
// canonical one keeps results comparable across runs.
func canonicalizeOrientation(tour []int) {
	n := len(tour) - 1
	if n < 3 {
		return
	}
	if tour[1] > tour[n-1] {
		_ = reverseArcInPlace(tour, 1, n-1)
	}
}

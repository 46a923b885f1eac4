// Package tsp - cost utilities.
//
// TourCost sums dist along a closed tour with strict checks and stabilizes
// the result to 1e-9 so that costs compare exactly across platforms.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the length of the closed tour.
//
// Errors: ErrDimensionMismatch (shape, index, NaN), ErrIncompleteGraph (+Inf
// edge), ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(dist [][]float64, tour []int) (float64, error) {
	n := len(dist)
	if n == 0 || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		u, v int
		w    float64
	)
	for i := 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n || len(dist[u]) != n {
			return 0, ErrDimensionMismatch
		}
		w = dist[u][v]
		switch {
		case math.IsNaN(w):
			return 0, ErrDimensionMismatch
		case math.IsInf(w, 0):
			return 0, ErrIncompleteGraph
		case w < 0:
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

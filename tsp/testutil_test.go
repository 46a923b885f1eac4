// Package tsp_test provides small helpers shared across the tsp tests.
package tsp_test

import (
	"math"

	"github.com/katalvlaran/lvlrand/tsp"
)

const (
	// seedDet is the fixed seed used wherever a generator is needed.
	seedDet = uint32(8008)

	// startV is the canonical start vertex.
	startV = 0

	// epsTiny matches tsp.DefaultEps.
	epsTiny = 1e-12
)

// circlePoints places n points evenly on the unit circle. Points in convex
// position make every 2-opt local optimum globally optimal.
func circlePoints(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}
	return pts
}

// circleOptimum is the perimeter of the regular n-gon inscribed in the unit circle.
func circleOptimum(n int) float64 {
	return float64(n) * 2 * math.Sin(math.Pi/float64(n))
}

// scrambledTour returns a deliberately crossing closed tour over n vertices
// starting at 0: evens first, then odds.
func scrambledTour(n int) []int {
	tour := make([]int, 0, n+1)
	for v := 0; v < n; v += 2 {
		tour = append(tour, v)
	}
	for v := 1; v < n; v += 2 {
		tour = append(tour, v)
	}
	return append(tour, 0)
}

// baseOpts returns DefaultOptions pinned to the test constants.
func baseOpts() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.StartVertex = startV
	opts.Eps = epsTiny
	return opts
}

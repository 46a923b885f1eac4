// Package tsp - 2-opt local search with a seeded neighborhood order.
//
// TwoOpt performs first-improvement 2-opt on a closed symmetric tour.
// For cut indices 1 ≤ i < k ≤ n−1 with a=T[i−1], b=T[i], c=T[k], d=T[k+1]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// and an improving move reverses T[i..k].
//
// Neighborhood order:
//   - ShuffleNeighborhood == false: i is scanned 1, 2, …, n−2.
//   - ShuffleNeighborhood == true:  the i-order is shuffled with the caller's
//     generator at the start of every pass, so different seeds explore
//     different local optima while one seed always finds the same one.
//
// Complexity:
//   - One pass: O(n²) candidate checks; the scan restarts after each move.
//   - Each accepted move costs O(k−i) for the reversal.
package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlrand/rng"
)

// deadlineStride throttles wall-clock checks inside the scan.
const deadlineStride = 2048

// TwoOpt improves initTour and returns the new tour with its cost.
// initTour is not modified. g may be nil only when ShuffleNeighborhood is off.
func TwoOpt(dist [][]float64, initTour []int, opts Options, g *rng.Generator) ([]int, float64, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return nil, 0, err
	}
	if opts.ShuffleNeighborhood && g == nil {
		return nil, 0, ErrNilGenerator
	}
	if err = ValidateTour(initTour, n, opts.StartVertex); err != nil {
		return nil, 0, err
	}

	cur := CopyTour(initTour)
	if _, err = TourCost(dist, cur); err != nil {
		return nil, 0, err
	}

	var (
		useDeadline bool
		deadline    time.Time
		step        int
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	checkDeadline := func() bool {
		step++
		if !useDeadline || step%deadlineStride != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	// First cut indices 1..n-2.
	order := make([]int, 0, n)
	for i := 1; i <= n-2; i++ {
		order = append(order, i)
	}

	accepted := 0
	for {
		if opts.ShuffleNeighborhood {
			rng.Shuffle(g, order)
		}

		improved := false
		var (
			a, b, c, d         int
			wab, wcd, wac, wbd float64
			delta              float64
			i, k               int
		)
	scan:
		for _, i = range order {
			for k = i + 1; k <= n-1; k++ {
				if checkDeadline() {
					return nil, 0, ErrTimeLimit
				}

				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				wab, wcd = dist[a][b], dist[c][d]
				wac, wbd = dist[a][c], dist[b][d]
				if math.IsInf(wac, 0) || math.IsInf(wbd, 0) {
					continue
				}
				delta = (wac + wbd) - (wab + wcd)
				if delta >= -opts.Eps {
					continue
				}

				if err = reverseArcInPlace(cur, i, k); err != nil {
					return nil, 0, err
				}
				accepted++
				improved = true
				break scan
			}
		}

		if !improved || (opts.TwoOptMaxIters > 0 && accepted >= opts.TwoOptMaxIters) {
			break
		}
	}

	canonicalizeOrientation(cur)
	cost, err := TourCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	return cur, cost, nil
}

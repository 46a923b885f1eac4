// Package tsp - validation helpers shared by TwoOpt and MultiStart.
//
// Design:
//   - Side-effect free; only sentinel errors from types.go.
//   - O(n²) for the matrix scan, O(1) for options.
package tsp

import "math"

// symTol is the structural tolerance for symmetry checks. It is unrelated to
// Options.Eps, which governs move acceptance.
const symTol = 1e-12

// validateAll checks options, matrix and start vertex; it returns n.
func validateAll(dist [][]float64, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}
	n, err := validateDistMatrix(dist)
	if err != nil {
		return 0, err
	}
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return 0, ErrStartOutOfRange
	}

	return n, nil
}

// validateOptions checks Options without looking at the instance.
func validateOptions(opts Options) error {
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return ErrBadOption
	}
	if opts.TwoOptMaxIters < 0 || opts.TimeLimit < 0 {
		return ErrBadOption
	}
	if opts.Restarts < 0 || opts.Workers < 0 {
		return ErrBadOption
	}

	return nil
}

// validateDistMatrix enforces: n ≥ 2, square rows, zero diagonal, no NaN,
// no negatives, symmetric within symTol. +Inf off the diagonal is allowed.
//
// Complexity: O(n²).
func validateDistMatrix(dist [][]float64) (int, error) {
	n := len(dist)
	if n < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		i, j int
		x, y float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}
	for i = 0; i < n; i++ {
		if dist[i][i] != 0 {
			return 0, ErrNonZeroDiagonal
		}
		for j = i + 1; j < n; j++ {
			x, y = dist[i][j], dist[j][i]
			if math.IsNaN(x) || math.IsNaN(y) {
				return 0, ErrDimensionMismatch
			}
			if x < 0 || y < 0 {
				return 0, ErrNegativeWeight
			}
			if math.IsInf(x, 1) || math.IsInf(y, 1) {
				if x != y {
					return 0, ErrAsymmetry
				}
				continue
			}
			if math.Abs(x-y) > symTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}

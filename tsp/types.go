package tsp

import (
	"errors"
	"time"
)

// Sentinel errors returned by the tsp package.
var (
	// ErrNonSquare indicates a ragged or non-square distance matrix.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch indicates an ill-shaped tour, permutation or matrix
	// entry (NaN, wrong length, duplicate or out-of-range vertex).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonZeroDiagonal indicates dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i].
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrNegativeWeight indicates a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative weight")

	// ErrIncompleteGraph indicates a tour that uses a missing (+Inf) edge, or
	// that no restart produced a feasible tour.
	ErrIncompleteGraph = errors.New("tsp: incomplete graph")

	// ErrStartOutOfRange indicates StartVertex outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrBadOption indicates a meaningless Options value.
	ErrBadOption = errors.New("tsp: invalid option")

	// ErrNilGenerator indicates a nil *rng.Generator where draws are required.
	ErrNilGenerator = errors.New("tsp: generator is nil")

	// ErrTimeLimit indicates the soft time budget expired mid-search.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")
)

// Defaults.
const (
	DefaultEps      = 1e-12
	DefaultRestarts = 8
	DefaultWorkers  = 4
)

// Options configures TwoOpt and MultiStart.
type Options struct {
	StartVertex int // fixed first/last vertex of every tour

	// Eps is the acceptance tolerance: a move is applied only when Δ < −Eps.
	Eps float64

	// TwoOptMaxIters caps accepted moves per TwoOpt call; 0 means unlimited.
	TwoOptMaxIters int

	// TimeLimit is a soft per-call budget for TwoOpt; 0 disables it.
	TimeLimit time.Duration

	// ShuffleNeighborhood re-shuffles the scan order of the first cut index
	// at the start of every 2-opt pass.
	ShuffleNeighborhood bool

	Restarts int // MultiStart: number of random initial tours
	Workers  int // MultiStart: goroutine limit
}

// DefaultOptions returns the options used by the CLI and examples.
//
// Defaults:
//   - StartVertex:         0
//   - Eps:                 DefaultEps
//   - TwoOptMaxIters:      0 (run to a local optimum)
//   - TimeLimit:           0 (no budget)
//   - ShuffleNeighborhood: true
//   - Restarts:            DefaultRestarts
//   - Workers:             DefaultWorkers
func DefaultOptions() Options {
	return Options{
		StartVertex:         0,
		Eps:                 DefaultEps,
		ShuffleNeighborhood: true,
		Restarts:            DefaultRestarts,
		Workers:             DefaultWorkers,
	}
}

// TSResult holds the outcome of a solver.
type TSResult struct {
	// Tour is closed: len == n+1, Tour[0] == Tour[n] == StartVertex.
	Tour []int

	// Cost is the total length, rounded to 1e-9.
	Cost float64
}

package rngstat

import "errors"

var (
	// ErrTooFewDraws indicates a sample too small for the requested statistic.
	ErrTooFewDraws = errors.New("rngstat: too few draws")

	// ErrBadBits indicates a low-bit width outside [1, 16].
	ErrBadBits = errors.New("rngstat: bits must be in [1, 16]")

	// ErrBadSize indicates a shuffle length below 2.
	ErrBadSize = errors.New("rngstat: size must be at least 2")
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// UniformityReport describes how Range(Lo, Hi) filled its buckets.
type UniformityReport struct {
	Lo, Hi  int
	Draws   int
	Counts  []int   // Counts[v-Lo] is the number of draws equal to v
	ChiSq   float64 // Pearson statistic against the uniform expectation
	DF      float64 // degrees of freedom, buckets − 1
	PValue  float64 // upper-tail probability of ChiSq
	Summary Summary
}

// PositionReport describes where each element landed after repeated shuffles.
// Hits[e][p] counts how often element e ended at position p.
type PositionReport struct {
	N      int
	Trials int
	Hits   [][]int
	ChiSq  []float64 // per position, against the uniform expectation Trials/N
	PValue []float64
}

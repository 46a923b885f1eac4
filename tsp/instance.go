package tsp

import (
	"math"

	"github.com/katalvlaran/lvlrand/rng"
)

// Instance is a planar TSP instance with its Euclidean distance matrix.
type Instance struct {
	Points [][2]float64
	Dist   [][]float64
}

// RandomEuclidean places n points on the integer grid [0, side]² using
// g.Range for both coordinates (x first, then y, point by point).
func RandomEuclidean(g *rng.Generator, n, side int) (Instance, error) {
	if g == nil {
		return Instance{}, ErrNilGenerator
	}
	if n < 2 {
		return Instance{}, ErrDimensionMismatch
	}
	if side < 1 {
		return Instance{}, ErrBadOption
	}

	pts := make([][2]float64, n)
	for i := range pts {
		x, err := g.Range(0, side)
		if err != nil {
			return Instance{}, err
		}
		y, err := g.Range(0, side)
		if err != nil {
			return Instance{}, err
		}
		pts[i] = [2]float64{float64(x), float64(y)}
	}

	return Instance{Points: pts, Dist: EuclideanMatrix(pts)}, nil
}

// EuclideanMatrix returns the symmetric matrix of pairwise distances.
//
// Complexity: O(n²).
func EuclideanMatrix(pts [][2]float64) [][]float64 {
	n := len(pts)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			m[i][j], m[j][i] = d, d
		}
	}

	return m
}

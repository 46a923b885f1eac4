package genetic

import (
	"errors"

	"github.com/katalvlaran/lvlrand/tsp"
)

// Sentinel errors returned by the genetic package.
var (
	// ErrChromosomeTooShort indicates fewer than two genes where two distinct
	// cut points or positions are required.
	ErrChromosomeTooShort = errors.New("genetic: chromosome too short")

	// ErrParentMismatch indicates parents of different length or gene sets.
	ErrParentMismatch = errors.New("genetic: parents do not share a gene set")

	// ErrEmptyPopulation indicates selection on an empty population.
	ErrEmptyPopulation = errors.New("genetic: empty population")

	// ErrBadOption indicates a meaningless Options value.
	ErrBadOption = errors.New("genetic: invalid option")

	// ErrNilGenerator indicates a nil *rng.Generator.
	ErrNilGenerator = errors.New("genetic: generator is nil")
)

// Individual is a chromosome with its evaluated tour cost.
type Individual struct {
	Chromosome []int
	Cost       float64
}

// Options configures Run.
type Options struct {
	PopulationSize int     // ≥ 2
	Generations    int     // ≥ 0; 0 returns the best initial individual
	CrossoverRate  float64 // in [0,1]
	MutationRate   float64 // in [0,1]
	Educate        bool    // improve each offspring with tsp.TwoOpt

	// LocalSearch configures education. Its StartVertex must be 0.
	LocalSearch tsp.Options
}

// DefaultOptions returns a small, fast configuration.
//
// Defaults:
//   - PopulationSize: 25
//   - Generations:    200
//   - CrossoverRate:  0.9
//   - MutationRate:   0.2
//   - Educate:        true
//   - LocalSearch:    tsp.DefaultOptions()
func DefaultOptions() Options {
	return Options{
		PopulationSize: 25,
		Generations:    200,
		CrossoverRate:  0.9,
		MutationRate:   0.2,
		Educate:        true,
		LocalSearch:    tsp.DefaultOptions(),
	}
}

package genetic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlrand/rng"
	"github.com/katalvlaran/lvlrand/tsp"
)

// Run evolves a population of giant tours over dist and returns the best
// closed tour found (start vertex 0).
//
// One generation draws, in this order: two binary tournaments, the crossover
// coin, OX cut points (if crossing), the mutation coin, mutation positions
// (if mutating), and the 2-opt shuffles of education. The offspring replaces
// the current worst individual when it is strictly better and not a clone.
//
// Individuals whose tour uses a missing edge get cost +Inf and are never
// educated. If no feasible individual is ever seen the error is
// tsp.ErrIncompleteGraph. ctx is checked once per generation.
func Run(ctx context.Context, dist [][]float64, opts Options, g *rng.Generator) (tsp.TSResult, error) {
	if g == nil {
		return tsp.TSResult{}, ErrNilGenerator
	}
	if err := validateOptions(opts); err != nil {
		return tsp.TSResult{}, err
	}
	n := len(dist)
	if n < 3 {
		return tsp.TSResult{}, fmt.Errorf("Run: n=%d: %w", n, ErrChromosomeTooShort)
	}
	for _, row := range dist {
		if len(row) != n {
			return tsp.TSResult{}, tsp.ErrNonSquare
		}
	}

	ev := evaluator{dist: dist, opts: opts, g: g}

	pop := make([]Individual, 0, opts.PopulationSize)
	for len(pop) < opts.PopulationSize {
		c, err := RandomChromosome(g, n)
		if err != nil {
			return tsp.TSResult{}, err
		}
		ind, err := ev.evaluate(c)
		if err != nil {
			return tsp.TSResult{}, err
		}
		pop = append(pop, ind)
	}
	best := pop[bestIndex(pop)]

	for gen := 0; gen < opts.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return tsp.TSResult{}, err
		}

		i1, err := BinaryTournament(g, pop)
		if err != nil {
			return tsp.TSResult{}, err
		}
		i2, err := BinaryTournament(g, pop)
		if err != nil {
			return tsp.TSResult{}, err
		}

		var child []int
		if g.Float64() < opts.CrossoverRate && i1 != i2 {
			if child, err = CrossoverOX(g, pop[i1].Chromosome, pop[i2].Chromosome); err != nil {
				return tsp.TSResult{}, err
			}
		} else {
			child = slices.Clone(pop[i1].Chromosome)
		}
		if g.Float64() < opts.MutationRate {
			if err = SwapMutation(g, child); err != nil {
				return tsp.TSResult{}, err
			}
		}

		off, err := ev.evaluate(child)
		if err != nil {
			return tsp.TSResult{}, err
		}
		if isClone(pop, off) {
			continue
		}
		if w := worstIndex(pop); off.Cost < pop[w].Cost {
			pop[w] = off
		}
		if off.Cost < best.Cost {
			best = off
		}
	}

	if math.IsInf(best.Cost, 1) {
		return tsp.TSResult{}, tsp.ErrIncompleteGraph
	}

	return tsp.TSResult{Tour: closeTour(best.Chromosome), Cost: best.Cost}, nil
}

// evaluator turns chromosomes into evaluated (and optionally educated)
// individuals.
type evaluator struct {
	dist [][]float64
	opts Options
	g    *rng.Generator
}

func (e evaluator) evaluate(c []int) (Individual, error) {
	tour := closeTour(c)
	cost, err := tsp.TourCost(e.dist, tour)
	if errors.Is(err, tsp.ErrIncompleteGraph) {
		return Individual{Chromosome: c, Cost: math.Inf(1)}, nil
	}
	if err != nil {
		return Individual{}, err
	}
	if !e.opts.Educate {
		return Individual{Chromosome: c, Cost: cost}, nil
	}

	improved, cost, err := tsp.TwoOpt(e.dist, tour, e.opts.LocalSearch, e.g)
	if err != nil {
		return Individual{}, err
	}

	return Individual{Chromosome: improved[1 : len(improved)-1], Cost: cost}, nil
}

// closeTour wraps a giant tour with the start vertex 0 on both ends.
func closeTour(c []int) []int {
	tour := make([]int, 0, len(c)+2)
	tour = append(tour, 0)
	tour = append(tour, c...)
	return append(tour, 0)
}

func isClone(pop []Individual, ind Individual) bool {
	for i := range pop {
		if pop[i].Cost == ind.Cost && slices.Equal(pop[i].Chromosome, ind.Chromosome) {
			return true
		}
	}
	return false
}

// bestIndex returns the first index of minimal cost.
func bestIndex(pop []Individual) int {
	b := 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Cost < pop[b].Cost {
			b = i
		}
	}
	return b
}

// worstIndex returns the first index of maximal cost.
func worstIndex(pop []Individual) int {
	w := 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Cost > pop[w].Cost {
			w = i
		}
	}
	return w
}

func validateOptions(opts Options) error {
	switch {
	case opts.PopulationSize < 2:
		return fmt.Errorf("PopulationSize=%d: %w", opts.PopulationSize, ErrBadOption)
	case opts.Generations < 0:
		return fmt.Errorf("Generations=%d: %w", opts.Generations, ErrBadOption)
	case !(opts.CrossoverRate >= 0 && opts.CrossoverRate <= 1):
		return fmt.Errorf("CrossoverRate=%g: %w", opts.CrossoverRate, ErrBadOption)
	case !(opts.MutationRate >= 0 && opts.MutationRate <= 1):
		return fmt.Errorf("MutationRate=%g: %w", opts.MutationRate, ErrBadOption)
	case opts.Educate && opts.LocalSearch.StartVertex != 0:
		return fmt.Errorf("LocalSearch.StartVertex=%d: %w", opts.LocalSearch.StartVertex, ErrBadOption)
	}
	return nil
}

// Package tsp - seeded multi-start driver.
//
// MultiStart runs Options.Restarts independent "random tour → TwoOpt"
// descents. Each restart owns a child generator derived from the base seed
// in restart order, so the set of descents is fixed before any goroutine
// runs, and the reduction picks the lowest cost with ties to the lowest
// restart index.
package tsp

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlrand/rng"
)

type restartResult struct {
	tour []int
	cost float64
	ok   bool
}

// MultiStart returns the best tour over Options.Restarts seeded descents.
//
// A restart whose random initial tour uses a missing edge is skipped; if all
// restarts are skipped the error is ErrIncompleteGraph. ctx cancellation
// stops scheduling further restarts and returns ctx.Err().
//
// Complexity: Restarts × O(TwoOpt).
func MultiStart(ctx context.Context, dist [][]float64, opts Options, seed uint32) (TSResult, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return TSResult{}, err
	}
	if opts.Restarts < 1 {
		return TSResult{}, ErrBadOption
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	base := rng.New(seed)
	streams := make([]*rng.Generator, opts.Restarts)
	for r := range streams {
		streams[r] = base.Derive(uint64(r))
	}

	results := make([]restartResult, opts.Restarts)
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for r := 0; r < opts.Restarts; r++ {
		r := r
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tour, cost, err := descend(dist, n, opts, streams[r])
			if errors.Is(err, ErrIncompleteGraph) {
				return nil
			}
			if err != nil {
				return err
			}
			results[r] = restartResult{tour: tour, cost: cost, ok: true}
			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return TSResult{}, err
	}

	best := -1
	for r := range results {
		if !results[r].ok {
			continue
		}
		if best < 0 || results[r].cost < results[best].cost {
			best = r
		}
	}
	if best < 0 {
		return TSResult{}, ErrIncompleteGraph
	}

	return TSResult{Tour: results[best].tour, Cost: results[best].cost}, nil
}

// descend builds a random tour from g and improves it with TwoOpt on the
// same stream.
func descend(dist [][]float64, n int, opts Options, g *rng.Generator) ([]int, float64, error) {
	perm, err := g.Perm(n)
	if err != nil {
		return nil, 0, err
	}
	tour, err := MakeTourFromPermutation(perm, n, opts.StartVertex)
	if err != nil {
		return nil, 0, err
	}

	return TwoOpt(dist, tour, opts, g)
}

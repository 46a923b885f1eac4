package genetic_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlrand/genetic"
	"github.com/katalvlaran/lvlrand/rng"
	"github.com/katalvlaran/lvlrand/tsp"
)

func BenchmarkCrossoverOX_L200(b *testing.B) {
	g := rng.New(1)
	p1, _ := genetic.RandomChromosome(g, 201)
	p2, _ := genetic.RandomChromosome(g, 201)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := genetic.CrossoverOX(g, p1, p2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_N40(b *testing.B) {
	inst, err := tsp.RandomEuclidean(rng.New(2), 40, 10000)
	if err != nil {
		b.Fatal(err)
	}
	opts := genetic.DefaultOptions()
	opts.Generations = 50

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = genetic.Run(context.Background(), inst.Dist, opts, rng.New(seedDet)); err != nil {
			b.Fatal(err)
		}
	}
}

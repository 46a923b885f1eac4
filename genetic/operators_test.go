package genetic_test

import (
	"slices"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlrand/genetic"
	"github.com/katalvlaran/lvlrand/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedDet = uint32(8008)

// isClients reports whether c is a permutation of 1..len(c).
func isClients(c []int) bool {
	s := slices.Clone(c)
	sort.Ints(s)
	for i, v := range s {
		if v != i+1 {
			return false
		}
	}
	return true
}

func TestRandomChromosome(t *testing.T) {
	c, err := genetic.RandomChromosome(rng.New(seedDet), 12)
	require.NoError(t, err)
	require.Len(t, c, 11)
	assert.True(t, isClients(c))

	// Same draws as shuffling the identity directly.
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	rng.Shuffle(rng.New(seedDet), want)
	assert.Equal(t, want, c)
}

func TestRandomChromosome_Errors(t *testing.T) {
	_, err := genetic.RandomChromosome(nil, 5)
	assert.ErrorIs(t, err, genetic.ErrNilGenerator)

	_, err = genetic.RandomChromosome(rng.New(1), 1)
	assert.ErrorIs(t, err, genetic.ErrChromosomeTooShort)
}

func TestCrossoverOX_KeepsSegmentAndOrder(t *testing.T) {
	p1 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	p2 := []int{9, 3, 7, 8, 2, 6, 5, 1, 4}
	L := len(p1)

	for seed := uint32(0); seed < 200; seed++ {
		child, err := genetic.CrossoverOX(rng.New(seed), p1, p2)
		require.NoError(t, err)
		require.True(t, isClients(child), "seed %d: %v", seed, child)

		// Replay the cut draws.
		g := rng.New(seed)
		start, _ := g.Range(0, L-1)
		end, _ := g.Range(0, L-1)
		for end == start {
			end, _ = g.Range(0, L-1)
		}

		inSeg := make(map[int]bool)
		for j := start; ; j = (j + 1) % L {
			assert.Equal(t, p1[j], child[j], "seed %d pos %d", seed, j)
			inSeg[p1[j]] = true
			if j == end {
				break
			}
		}

		var fromP2, fromChild []int
		for i := 1; i <= L; i++ {
			if gene := p2[(end+i)%L]; !inSeg[gene] {
				fromP2 = append(fromP2, gene)
			}
		}
		for i := 1; i <= L-len(inSeg); i++ {
			fromChild = append(fromChild, child[(end+i)%L])
		}
		assert.Equal(t, fromP2, fromChild, "seed %d", seed)
	}
}

func TestCrossoverOX_IdenticalParents(t *testing.T) {
	p := []int{4, 1, 3, 2}
	child, err := genetic.CrossoverOX(rng.New(seedDet), p, p)
	require.NoError(t, err)
	assert.Equal(t, p, child)
}

func TestCrossoverOX_Errors(t *testing.T) {
	g := rng.New(seedDet)

	_, err := genetic.CrossoverOX(nil, []int{1, 2}, []int{2, 1})
	assert.ErrorIs(t, err, genetic.ErrNilGenerator)

	_, err = genetic.CrossoverOX(g, []int{1}, []int{1})
	assert.ErrorIs(t, err, genetic.ErrChromosomeTooShort)

	_, err = genetic.CrossoverOX(g, []int{1, 2, 3}, []int{1, 2})
	assert.ErrorIs(t, err, genetic.ErrParentMismatch)

	_, err = genetic.CrossoverOX(g, []int{1, 2, 3}, []int{1, 2, 4})
	assert.ErrorIs(t, err, genetic.ErrParentMismatch)

	_, err = genetic.CrossoverOX(g, []int{1, 1, 3}, []int{1, 3, 1})
	assert.ErrorIs(t, err, genetic.ErrParentMismatch)
}

func TestSwapMutation(t *testing.T) {
	for seed := uint32(0); seed < 100; seed++ {
		c := []int{1, 2, 3, 4, 5, 6}
		require.NoError(t, genetic.SwapMutation(rng.New(seed), c))
		require.True(t, isClients(c))

		diff := 0
		for i, v := range c {
			if v != i+1 {
				diff++
			}
		}
		assert.Equal(t, 2, diff, "seed %d: %v", seed, c)
	}

	c := []int{1, 2}
	require.NoError(t, genetic.SwapMutation(rng.New(seedDet), c))
	assert.Equal(t, []int{2, 1}, c)

	assert.ErrorIs(t, genetic.SwapMutation(rng.New(1), []int{1}), genetic.ErrChromosomeTooShort)
	assert.ErrorIs(t, genetic.SwapMutation(nil, []int{1, 2}), genetic.ErrNilGenerator)
}

func TestBinaryTournament(t *testing.T) {
	pop := []genetic.Individual{{Cost: 5}, {Cost: 1}, {Cost: 3}, {Cost: 1}}

	for seed := uint32(0); seed < 50; seed++ {
		got, err := genetic.BinaryTournament(rng.New(seed), pop)
		require.NoError(t, err)

		g := rng.New(seed)
		a, _ := g.Range(0, len(pop)-1)
		b, _ := g.Range(0, len(pop)-1)
		want := a
		if pop[b].Cost < pop[a].Cost {
			want = b
		}
		assert.Equal(t, want, got, "seed %d", seed)
	}

	_, err := genetic.BinaryTournament(rng.New(1), nil)
	assert.ErrorIs(t, err, genetic.ErrEmptyPopulation)
	_, err = genetic.BinaryTournament(nil, pop)
	assert.ErrorIs(t, err, genetic.ErrNilGenerator)
}

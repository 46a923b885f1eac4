package genetic

import (
	"fmt"

	"github.com/katalvlaran/lvlrand/rng"
)

// RandomChromosome returns the clients 1..n-1 in shuffled order.
//
// Complexity: O(n).
func RandomChromosome(g *rng.Generator, n int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	if n < 2 {
		return nil, fmt.Errorf("RandomChromosome: n=%d: %w", n, ErrChromosomeTooShort)
	}
	c := make([]int, n-1)
	for i := range c {
		c[i] = i + 1
	}
	rng.Shuffle(g, c)

	return c, nil
}

// CrossoverOX builds one child with order crossover.
//
// start and end are drawn with Range(0, L−1), end being redrawn while it
// equals start. The child inherits p1's circular segment start..end at the
// same positions; the remaining positions, walking on from end+1, are filled
// with p2's genes in p2's order starting after end, skipping genes already
// copied.
//
// Complexity: O(L).
func CrossoverOX(g *rng.Generator, p1, p2 []int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	L := len(p1)
	if L < 2 {
		return nil, fmt.Errorf("CrossoverOX: len=%d: %w", L, ErrChromosomeTooShort)
	}
	if err := sameGenes(p1, p2); err != nil {
		return nil, err
	}

	start, err := g.Range(0, L-1)
	if err != nil {
		return nil, err
	}
	end, err := g.Range(0, L-1)
	if err != nil {
		return nil, err
	}
	for end == start {
		if end, err = g.Range(0, L-1); err != nil {
			return nil, err
		}
	}

	child := make([]int, L)
	taken := make(map[int]bool, L)
	seg := (end-start+L)%L + 1
	j := start
	for ; j < start+seg; j++ {
		child[j%L] = p1[j%L]
		taken[p1[j%L]] = true
	}
	for i := 1; i <= L; i++ {
		gene := p2[(end+i)%L]
		if taken[gene] {
			continue
		}
		child[j%L] = gene
		j++
	}

	return child, nil
}

// SwapMutation exchanges two distinct positions of c in place.
func SwapMutation(g *rng.Generator, c []int) error {
	if g == nil {
		return ErrNilGenerator
	}
	if len(c) < 2 {
		return fmt.Errorf("SwapMutation: len=%d: %w", len(c), ErrChromosomeTooShort)
	}
	i, err := g.Range(0, len(c)-1)
	if err != nil {
		return err
	}
	// Draw from the other L−1 positions.
	j, err := g.Range(0, len(c)-2)
	if err != nil {
		return err
	}
	if j >= i {
		j++
	}
	c[i], c[j] = c[j], c[i]

	return nil
}

// BinaryTournament draws two indices with Range(0, len(pop)−1) and returns
// the one with the lower cost; on a tie the first draw wins.
func BinaryTournament(g *rng.Generator, pop []Individual) (int, error) {
	if g == nil {
		return 0, ErrNilGenerator
	}
	if len(pop) == 0 {
		return 0, ErrEmptyPopulation
	}
	a, err := g.Range(0, len(pop)-1)
	if err != nil {
		return 0, err
	}
	b, err := g.Range(0, len(pop)-1)
	if err != nil {
		return 0, err
	}
	if pop[b].Cost < pop[a].Cost {
		return b, nil
	}

	return a, nil
}

// sameGenes checks that p2 is a rearrangement of p1 with no duplicates.
func sameGenes(p1, p2 []int) error {
	if len(p1) != len(p2) {
		return fmt.Errorf("len %d vs %d: %w", len(p1), len(p2), ErrParentMismatch)
	}
	seen := make(map[int]int, len(p1))
	for _, v := range p1 {
		seen[v]++
		if seen[v] > 1 {
			return fmt.Errorf("duplicate gene %d: %w", v, ErrParentMismatch)
		}
	}
	for _, v := range p2 {
		if seen[v] != 1 {
			return fmt.Errorf("gene %d: %w", v, ErrParentMismatch)
		}
		seen[v]++
	}

	return nil
}

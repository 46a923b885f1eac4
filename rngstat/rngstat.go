package rngstat

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvlrand/rng"
)

// minDrawsPerBucket keeps the χ² approximation meaningful.
const minDrawsPerBucket = 5

// Uniformity draws `draws` values from g.Range(lo, hi) and tests them against
// the discrete uniform distribution on [lo, hi].
func Uniformity(g *rng.Generator, lo, hi, draws int) (UniformityReport, error) {
	if hi < lo {
		// Surface the generator's own sentinel before drawing anything.
		_, err := g.Range(lo, hi)
		return UniformityReport{}, err
	}
	buckets := hi - lo + 1
	if buckets < 2 || draws < buckets*minDrawsPerBucket {
		return UniformityReport{}, fmt.Errorf("Uniformity: %d draws over %d buckets: %w", draws, buckets, ErrTooFewDraws)
	}

	counts := make([]int, buckets)
	sample := make([]float64, draws)
	for i := 0; i < draws; i++ {
		v, err := g.Range(lo, hi)
		if err != nil {
			return UniformityReport{}, err
		}
		counts[v-lo]++
		sample[i] = float64(v)
	}

	summary, err := summarize(sample)
	if err != nil {
		return UniformityReport{}, err
	}

	chi, df, p := chiSquareUniform(counts, draws)

	return UniformityReport{
		Lo:      lo,
		Hi:      hi,
		Draws:   draws,
		Counts:  counts,
		ChiSq:   chi,
		DF:      df,
		PValue:  p,
		Summary: summary,
	}, nil
}

// SerialCorrelation returns the lag-1 Pearson correlation of successive
// Float64 draws. Values near 0 mean neighbouring draws look unrelated.
func SerialCorrelation(g *rng.Generator, draws int) (float64, error) {
	if draws < 3 {
		return 0, fmt.Errorf("SerialCorrelation: draws=%d: %w", draws, ErrTooFewDraws)
	}
	xs := make([]float64, draws)
	for i := range xs {
		xs[i] = g.Float64()
	}

	return stat.Correlation(xs[:draws-1], xs[1:], nil), nil
}

// LowBitPeriod returns the smallest period p such that the low `bits` bits of
// Next() repeat with period p across the sampled window. For this LCG the
// answer is 2^bits; a return of 0 means no period fit inside draws/2.
func LowBitPeriod(g *rng.Generator, bits, draws int) (int, error) {
	if bits < 1 || bits > 16 {
		return 0, fmt.Errorf("LowBitPeriod: bits=%d: %w", bits, ErrBadBits)
	}
	if draws < 2<<bits {
		return 0, fmt.Errorf("LowBitPeriod: draws=%d for %d bits: %w", draws, bits, ErrTooFewDraws)
	}

	mask := uint32(1)<<bits - 1
	xs := make([]uint32, draws)
	for i := range xs {
		xs[i] = g.Next() & mask
	}

	var p, i int
	for p = 1; p <= draws/2; p++ {
		for i = p; i < draws; i++ {
			if xs[i] != xs[i-p] {
				break
			}
		}
		if i == draws {
			return p, nil
		}
	}

	return 0, nil
}

// PositionBias shuffles the identity 0..n-1 `trials` times from one stream
// seeded with seed (each trial starts from a fresh identity) and tallies the
// landing position of every element.
func PositionBias(seed uint32, n, trials int) (PositionReport, error) {
	if n < 2 {
		return PositionReport{}, fmt.Errorf("PositionBias: n=%d: %w", n, ErrBadSize)
	}
	if trials < n*minDrawsPerBucket {
		return PositionReport{}, fmt.Errorf("PositionBias: trials=%d for n=%d: %w", trials, n, ErrTooFewDraws)
	}

	g := rng.New(seed)
	hits := make([][]int, n)
	for e := range hits {
		hits[e] = make([]int, n)
	}
	perm := make([]int, n)
	for t := 0; t < trials; t++ {
		for i := range perm {
			perm[i] = i
		}
		rng.Shuffle(g, perm)
		for pos, e := range perm {
			hits[e][pos]++
		}
	}

	rep := PositionReport{
		N:      n,
		Trials: trials,
		Hits:   hits,
		ChiSq:  make([]float64, n),
		PValue: make([]float64, n),
	}
	col := make([]int, n)
	for pos := 0; pos < n; pos++ {
		for e := 0; e < n; e++ {
			col[e] = hits[e][pos]
		}
		rep.ChiSq[pos], _, rep.PValue[pos] = chiSquareUniform(col, trials)
	}

	return rep, nil
}

// chiSquareUniform returns Pearson's statistic, the degrees of freedom and the
// upper-tail p-value for counts summing to total under a uniform expectation.
func chiSquareUniform(counts []int, total int) (chi, df, p float64) {
	k := len(counts)
	exp := float64(total) / float64(k)
	for _, c := range counts {
		d := float64(c) - exp
		chi += d * d / exp
	}
	df = float64(k - 1)
	p = 1 - distuv.ChiSquared{K: df}.CDF(chi)

	return chi, df, p
}

func summarize(sample []float64) (Summary, error) {
	data := stats.Float64Data(sample)

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	sd, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, err
	}
	lo, err := stats.Min(data)
	if err != nil {
		return Summary{}, err
	}
	hi, err := stats.Max(data)
	if err != nil {
		return Summary{}, err
	}
	med, err := stats.Median(data)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Mean: mean, StdDev: sd, Min: lo, Max: hi, Median: med}, nil
}

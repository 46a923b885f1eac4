// Package lvlrand is a small toolkit around one deterministic, seeded
// pseudo-random generator and the stochastic solver pieces it drives.
//
// 🚀 What is inside?
//
//	A reproducible stream first, everything else second:
//		• rng:      the 31-bit LCG (Next, Range, Shuffle, Perm, Derive, Locked)
//		• rngstat:  stream diagnostics (χ² uniformity, lag-1 correlation, low-bit period)
//		• tsp:      seeded 2-opt with shuffled neighbourhoods and multi-start
//		• genetic:  OX crossover, swap mutation, tournaments and a steady-state GA
//
// ✨ Why lvlrand?
//
//   - Same seed, same run: every draw is a pure function of the seed
//   - Workers get their own streams via Derive, so results ignore scheduling
//   - Library packages never log and return sentinel errors for errors.Is
//
// Layout:
//
//	rng/          — Generator, Shuffle, Derive, Locked
//	rngstat/      — Uniformity, SerialCorrelation, LowBitPeriod, PositionBias
//	tsp/          — TourCost, TwoOpt, MultiStart, RandomEuclidean
//	genetic/      — RandomChromosome, CrossoverOX, SwapMutation, BinaryTournament, Run
//	cmd/lvlrand/  — command line: sequence, stats and solve modes
//
// Quick start:
//
//	g := rng.New(8008)
//	v, _ := g.Range(10, 20) // 11
//
//	go get github.com/katalvlaran/lvlrand/rng
package lvlrand

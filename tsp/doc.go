// Package tsp provides the seeded local-search side of lvlrand: tour utilities,
// a 2-opt engine whose neighborhood order is shuffled by an rng.Generator,
// and a multi-start driver that fans restarts out to workers while keeping
// the result a pure function of (instance, options, seed).
//
// Distances are a dense [][]float64 (n×n, zero diagonal, non-negative,
// symmetric). math.Inf(1) marks a missing edge: moves that would use one are
// rejected, and tours that contain one fail with ErrIncompleteGraph.
//
// Tours are closed: len(tour) == n+1 and tour[0] == tour[n] == StartVertex.
//
// Determinism:
//   - TwoOpt draws only from the generator it is given, once per pass.
//   - MultiStart derives one child generator per restart, in restart order,
//     before any goroutine starts; ties between equal costs go to the lowest
//     restart index. The answer does not depend on Options.Workers.
//
// Errors are the sentinels in types.go; no logging, no panics on user input.
package tsp

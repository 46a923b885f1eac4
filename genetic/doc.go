// Package genetic implements the hybrid genetic search operators that consume
// the seeded rng stream: random giant-tour chromosomes, order crossover (OX),
// swap mutation and binary tournament selection, plus a small steady-state
// driver (Run) that educates offspring with tsp.TwoOpt.
//
// A chromosome is a giant tour without the depot: a permutation of the
// clients 1..n-1 of an n-vertex instance whose vertex 0 is the start.
//
// Every random decision goes through one *rng.Generator, in a fixed order, so
// Run with the same instance, options and seed returns the same tour.
package genetic

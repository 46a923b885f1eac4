// Command lvlrand prints seeded draw sequences, runs stream diagnostics and
// solves random Euclidean tours with the seeded solvers.
//
// Usage:
//
//	lvlrand -mode sequence -seed 8008
//	lvlrand -config ~/.lvlrand/config.yaml -mode stats
//	lvlrand -mode solve
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lvlrand:", err)
		stop()
		os.Exit(1)
	}
}

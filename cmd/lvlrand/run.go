package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvlrand/genetic"
	"github.com/katalvlaran/lvlrand/internal/config"
	"github.com/katalvlaran/lvlrand/internal/logging"
	"github.com/katalvlaran/lvlrand/rng"
	"github.com/katalvlaran/lvlrand/rngstat"
	"github.com/katalvlaran/lvlrand/tsp"
	"github.com/sirupsen/logrus"
)

// Modes accepted by -mode.
const (
	modeSequence = "sequence"
	modeStats    = "stats"
	modeSolve    = "solve"
)

var errUnknownMode = errors.New("unknown mode")

// run parses args, loads configuration and executes one mode. Results go to
// stdout; log lines go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lvlrand", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file (~ is expanded)")
		envFile    = fs.String("env", ".env", "dotenv file with LVLRAND_* overrides")
		mode       = fs.String("mode", modeSequence, "sequence | stats | solve")
		seed       = fs.Int64("seed", -1, "seed override; negative keeps the configured seed")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err = cfg.ApplyEnv(*envFile); err != nil {
		return err
	}
	if *seed >= 0 {
		if *seed > int64(^uint32(0)) {
			return fmt.Errorf("-seed %d: %w", *seed, config.ErrInvalidConfig)
		}
		cfg.Seed = uint32(*seed)
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.LogLevel, stderr, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer()
	log := logging.RunEntry(logger, *mode, cfg.Seed)

	switch *mode {
	case modeSequence:
		return runSequence(cfg, stdout, log)
	case modeStats:
		return runStats(cfg, log)
	case modeSolve:
		return runSolve(ctx, cfg, stdout, log)
	default:
		return fmt.Errorf("%q: %w", *mode, errUnknownMode)
	}
}

func runSequence(cfg *config.Config, stdout io.Writer, log *logrus.Entry) error {
	g := rng.New(cfg.Seed)
	vals := make([]string, 0, cfg.Sequence.Draws)
	for i := 0; i < cfg.Sequence.Draws; i++ {
		v, err := g.Range(cfg.Sequence.Min, cfg.Sequence.Max)
		if err != nil {
			return err
		}
		vals = append(vals, strconv.Itoa(v))
	}
	log.WithField("draws", cfg.Sequence.Draws).Debug("sequence drawn")
	_, err := fmt.Fprintln(stdout, strings.Join(vals, " "))
	return err
}

func runStats(cfg *config.Config, log *logrus.Entry) error {
	sc := cfg.Stats

	u, err := rngstat.Uniformity(rng.New(cfg.Seed), sc.Min, sc.Max, sc.Draws)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"draws":   humanize.Comma(int64(u.Draws)),
		"chi_sq":  fmt.Sprintf("%.3f", u.ChiSq),
		"df":      u.DF,
		"p_value": fmt.Sprintf("%.4f", u.PValue),
		"mean":    fmt.Sprintf("%.4f", u.Summary.Mean),
		"std_dev": fmt.Sprintf("%.4f", u.Summary.StdDev),
	}).Info("uniformity")

	corr, err := rngstat.SerialCorrelation(rng.New(cfg.Seed), sc.Draws)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"draws": humanize.Comma(int64(sc.Draws)),
		"lag1":  fmt.Sprintf("%.5f", corr),
	}).Info("serial correlation")

	period, err := rngstat.LowBitPeriod(rng.New(cfg.Seed), sc.LowBits, sc.Draws)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"bits":   sc.LowBits,
		"period": period,
	}).Info("low-bit period")

	pb, err := rngstat.PositionBias(cfg.Seed, sc.ShuffleLen, sc.ShuffleTries)
	if err != nil {
		return err
	}
	worst := 1.0
	for _, p := range pb.PValue {
		worst = min(worst, p)
	}
	log.WithFields(logrus.Fields{
		"n":         pb.N,
		"trials":    humanize.Comma(int64(pb.Trials)),
		"min_p":     fmt.Sprintf("%.4f", worst),
		"positions": len(pb.PValue),
	}).Info("shuffle position bias")

	return nil
}

func runSolve(ctx context.Context, cfg *config.Config, stdout io.Writer, log *logrus.Entry) error {
	sc := cfg.Solve
	g := rng.New(cfg.Seed)

	inst, err := tsp.RandomEuclidean(g, sc.Cities, sc.Side)
	if err != nil {
		return err
	}

	opts := tsp.DefaultOptions()
	opts.Restarts = sc.Restarts
	opts.Workers = sc.Workers
	ms, err := tsp.MultiStart(ctx, inst.Dist, opts, g.Next())
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"cities":   sc.Cities,
		"restarts": sc.Restarts,
		"cost":     fmt.Sprintf("%.3f", ms.Cost),
	}).Info("multi-start 2-opt")

	gaOpts := genetic.DefaultOptions()
	gaOpts.PopulationSize = sc.Population
	gaOpts.Generations = sc.Generations
	ga, err := genetic.Run(ctx, inst.Dist, gaOpts, g.Derive(0))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"population":  sc.Population,
		"generations": humanize.Comma(int64(sc.Generations)),
		"cost":        fmt.Sprintf("%.3f", ga.Cost),
	}).Info("genetic search")

	best := ms
	if ga.Cost < best.Cost {
		best = ga
	}
	_, err = fmt.Fprintf(stdout, "%.3f %v\n", best.Cost, best.Tour)
	return err
}

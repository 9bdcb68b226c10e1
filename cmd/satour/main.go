// Command satour approximates a shortest closed tour over cities read from a
// coordinate file, using simulated annealing with independent restarts.
//
// Usage:
//
//	satour -cities cities.txt [-config run.yaml] [-route best_route.txt]
//	       [-plot route.png] [-init route.txt]
//
// On success it prints the best length and visiting order, writes the order
// to the route file, and renders a 2-D diagram of the route.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/satour/satour/anneal"
	"github.com/satour/satour/cities"
	"github.com/satour/satour/config"
	"github.com/satour/satour/geo"
	"github.com/satour/satour/report"
)

func main() {
	var (
		citiesPath = flag.String("cities", "", "path to the city coordinate file (required)")
		configPath = flag.String("config", "", "path to the YAML run configuration (optional)")
		routePath  = flag.String("route", "best_route.txt", "path for the best visiting order; empty disables")
		plotPath   = flag.String("plot", "route.png", "path for the route diagram PNG; empty disables")
		initPath   = flag.String("init", "", "path to an initial route file (optional)")
	)
	flag.Parse()

	if err := run(*citiesPath, *configPath, *routePath, *plotPath, *initPath); err != nil {
		fmt.Fprintf(os.Stderr, "satour: %v\n", err)
		os.Exit(1)
	}
}

func run(citiesPath, configPath, routePath, plotPath, initPath string) error {
	if citiesPath == "" {
		return errors.New("missing required -cities flag")
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	logger := report.NewLogger(cfg.LogLevel, os.Stderr)

	pts, err := cities.ReadPoints(citiesPath)
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if initPath != "" {
		if opts.InitialTour, err = cities.ReadTour(initPath); err != nil {
			return err
		}
	}

	// A zero configured seed is resolved here so that every restart seed is
	// derived from one known base and the whole search stays replayable.
	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var (
		m       = geo.NewDistMatrix(pts)
		runID   = uuid.NewString()
		start   = time.Now()
		lengths = make([]float64, 0, cfg.Runs)
		best    anneal.Result
	)
	logger.Info("search starting",
		"run_id", runID,
		"cities", len(pts),
		"runs", cfg.Runs,
		"move", opts.Move.String(),
		"base_seed", baseSeed,
	)

	for r := 0; r < cfg.Runs; r++ {
		opts.Seed = anneal.DeriveSeed(baseSeed, uint64(r))

		res, err := anneal.Optimize(m, opts)
		if err != nil {
			return err
		}
		lengths = append(lengths, res.Length)

		logger.Debug("restart finished",
			"run_id", runID,
			"restart", r,
			"length", res.Length,
			"iterations", res.Iterations,
			"stop", res.Stop.String(),
		)

		if r == 0 || res.Length < best.Length {
			best = res
		}
	}
	elapsed := time.Since(start)

	reporter := report.NewReporter(logger, os.Stdout)
	reporter.Report(report.Summary{
		RunID:   runID,
		Result:  best,
		Runs:    cfg.Runs,
		Elapsed: elapsed,
	})

	if stats, err := report.Summarize(lengths); err == nil && stats.Runs > 1 {
		logger.Info("restart statistics",
			"run_id", runID,
			"best", stats.Best,
			"worst", stats.Worst,
			"mean", stats.Mean,
			"stddev", stats.StdDev,
		)
	}

	if routePath != "" {
		if err := cities.WriteTour(routePath, best.Tour); err != nil {
			return err
		}
		logger.Info("route written", "run_id", runID, "path", routePath)
	}
	if plotPath != "" {
		if err := report.SaveRoutePlot(plotPath, pts, best.Tour); err != nil {
			return err
		}
		logger.Info("plot written", "run_id", runID, "path", plotPath)
	}

	return nil
}

package report

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrNoRuns is returned when there are no run lengths to summarize.
var ErrNoRuns = errors.New("report: no run lengths to summarize")

// Stats summarizes best-tour lengths across independent restarts.
type Stats struct {
	Runs   int
	Best   float64 // shortest length over all runs
	Worst  float64 // longest length over all runs
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single run
}

// Summarize computes run statistics over the given best lengths.
func Summarize(lengths []float64) (Stats, error) {
	if len(lengths) == 0 {
		return Stats{}, ErrNoRuns
	}

	var (
		best  = lengths[0]
		worst = lengths[0]
	)
	for _, l := range lengths[1:] {
		best = math.Min(best, l)
		worst = math.Max(worst, l)
	}

	var sd float64
	if len(lengths) > 1 {
		sd = stat.StdDev(lengths, nil)
	}

	return Stats{
		Runs:   len(lengths),
		Best:   best,
		Worst:  worst,
		Mean:   stat.Mean(lengths, nil),
		StdDev: sd,
	}, nil
}

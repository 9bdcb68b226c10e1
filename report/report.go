package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/satour/satour/anneal"
)

// Summary carries everything the reporter prints about a finished search.
type Summary struct {
	RunID   string        // identifier tying console output to log lines
	Result  anneal.Result // best tour, length, iterations, stop reason
	Runs    int           // number of independent restarts performed
	Elapsed time.Duration // wall-clock time of the whole search
}

// Reporter writes human-readable results to w and structured records to log.
type Reporter struct {
	log *slog.Logger
	w   io.Writer
}

// NewReporter returns a Reporter. A nil logger falls back to slog.Default;
// a nil writer suppresses the plain-text output.
func NewReporter(log *slog.Logger, w io.Writer) *Reporter {
	if log == nil {
		log = slog.Default()
	}

	return &Reporter{log: log, w: w}
}

// Report emits the final search summary.
func (r *Reporter) Report(s Summary) {
	r.log.Info("search finished",
		"run_id", s.RunID,
		"best_length", s.Result.Length,
		"iterations", s.Result.Iterations,
		"stop", s.Result.Stop.String(),
		"runs", s.Runs,
		"elapsed", s.Elapsed,
	)

	if r.w == nil {
		return
	}
	fmt.Fprintf(r.w, "shortest trip length found: %g\n", s.Result.Length)
	fmt.Fprintf(r.w, "visiting order: %s\n", formatTour(s.Result.Tour))
	fmt.Fprintf(r.w, "run time: %s\n", s.Elapsed)
}

// formatTour renders a visiting order as "0 3 1 2".
func formatTour(tour []int) string {
	var b strings.Builder
	for i, v := range tour {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}

	return b.String()
}

// NewLogger builds a text slog.Logger at the given level ("debug", "info",
// "warn", "error"; anything else means info) writing to output.
func NewLogger(level string, output io.Writer) *slog.Logger {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

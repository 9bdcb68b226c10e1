package anneal

import "errors"

// Sentinel errors returned by the annealing core. Configuration and metric
// problems are detected before the loop starts; the loop itself has no error
// conditions (a rejected candidate is normal control flow).
var (
	// ErrNilMetric is returned when the distance metric is nil.
	ErrNilMetric = errors.New("anneal: metric is nil")

	// ErrTooFewCities is returned for instances with fewer than two cities.
	ErrTooFewCities = errors.New("anneal: at least two cities are required")

	// ErrBadMetric is returned when the metric contains NaN, infinite or
	// negative entries, a non-zero diagonal, or an asymmetric pair.
	ErrBadMetric = errors.New("anneal: invalid distance metric")

	// ErrBadInitialTemp is returned when Options.InitialTemp is not positive.
	ErrBadInitialTemp = errors.New("anneal: initial temperature must be positive")

	// ErrBadDecayRate is returned when Options.DecayRate is outside (0,1).
	ErrBadDecayRate = errors.New("anneal: decay rate must be in (0,1)")

	// ErrBadMinTemp is returned when Options.MinTemp is not positive.
	ErrBadMinTemp = errors.New("anneal: minimum temperature must be positive")

	// ErrBadMaxIterations is returned when Options.MaxIterations is not positive.
	ErrBadMaxIterations = errors.New("anneal: iteration cap must be positive")

	// ErrBadMovePolicy is returned for an unknown Options.Move value.
	ErrBadMovePolicy = errors.New("anneal: unknown move policy")

	// ErrBadPermutation is returned when a tour is not a permutation of
	// {0..n-1} (wrong length, duplicate, or missing index).
	ErrBadPermutation = errors.New("anneal: tour is not a valid permutation")

	// ErrIndexOutOfRange is returned when a tour references a city index
	// outside the metric's range.
	ErrIndexOutOfRange = errors.New("anneal: city index out of range")
)

// Metric is the read-only distance model consumed by the optimizer.
// N reports the number of cities; At returns the distance between two of
// them. *geo.DistMatrix is the production implementation; tests may provide
// stubs.
type Metric interface {
	N() int
	At(i, j int) float64
}

// Default configuration knobs. The temperature constants match the classic
// geometric schedule for small planar instances; the iteration cap is sized
// so that the schedule, not the cap, usually ends the run.
const (
	DefaultInitialTemp   = 100.0
	DefaultDecayRate     = 0.995
	DefaultMinTemp       = 0.01
	DefaultMaxIterations = 200000
)

// Options configures a single annealing run.
//
// InitialTemp   – starting temperature, must be > 0.
// DecayRate     – geometric cooling factor, must be in (0,1).
// MinTemp       – stopping floor, must be > 0; the run converges once the
//                 temperature falls below it.
// MaxIterations – hard iteration cap, must be > 0.
// Move          – neighborhood policy (MoveReverse or MoveSwap).
// Seed          – RNG seed; 0 means a time-based seed, any other value makes
//                 the run fully deterministic.
// InitialTour   – optional starting permutation of {0..n-1}; nil means a
//                 random permutation drawn from the run's RNG.
type Options struct {
	InitialTemp   float64
	DecayRate     float64
	MinTemp       float64
	MaxIterations int
	Move          MovePolicy
	Seed          int64
	InitialTour   []int
}

// DefaultOptions returns Options initialized with the package defaults:
// segment-reversal moves, time-based seeding, random initial tour.
func DefaultOptions() Options {
	return Options{
		InitialTemp:   DefaultInitialTemp,
		DecayRate:     DefaultDecayRate,
		MinTemp:       DefaultMinTemp,
		MaxIterations: DefaultMaxIterations,
		Move:          MoveReverse,
	}
}

// StopReason records which stopping condition ended the run.
type StopReason int

const (
	// StopConverged means the temperature fell below Options.MinTemp.
	StopConverged StopReason = iota

	// StopIterationLimit means Options.MaxIterations was reached first.
	StopIterationLimit
)

// String returns a short human-readable form for logs and reports.
func (s StopReason) String() string {
	switch s {
	case StopConverged:
		return "converged"
	case StopIterationLimit:
		return "iteration-limit"
	default:
		return "unknown"
	}
}

// Result holds the outcome of an annealing run.
type Result struct {
	// Tour is the best visiting order found: a permutation of {0..n-1},
	// implicitly closed (the last city connects back to the first).
	Tour []int

	// Length is the total length of Tour, including the closing edge,
	// stabilized to 1e-9.
	Length float64

	// Iterations is the number of loop iterations actually executed.
	Iterations int

	// FinalTemp is the temperature at which the run stopped.
	FinalTemp float64

	// Stop records which stopping condition fired.
	Stop StopReason
}

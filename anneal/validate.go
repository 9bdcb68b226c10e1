// Package anneal - validation utilities.
//
// All configuration and input problems are detected here, before the loop
// starts; the loop itself never fails.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst case for the metric scan; no hidden allocations.
package anneal

import "math"

// metricTol is the structural tolerance for diagonal/symmetry checks.
// Independent of any acceptance threshold; it only guards against
// ill-formed distance tables.
const metricTol = 1e-12

// validateOptions checks internal consistency of Options without touching
// the metric.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.InitialTemp <= 0 || math.IsNaN(opts.InitialTemp) || math.IsInf(opts.InitialTemp, 0) {
		return ErrBadInitialTemp
	}
	if opts.DecayRate <= 0 || opts.DecayRate >= 1 || math.IsNaN(opts.DecayRate) {
		return ErrBadDecayRate
	}
	if opts.MinTemp <= 0 || math.IsNaN(opts.MinTemp) || math.IsInf(opts.MinTemp, 0) {
		return ErrBadMinTemp
	}
	if opts.MaxIterations <= 0 {
		return ErrBadMaxIterations
	}

	switch opts.Move {
	case MoveReverse, MoveSwap:
		// ok
	default:
		return ErrBadMovePolicy
	}

	return nil
}

// validateMetric performs the full metric validation:
//   - non-nil, n ≥ 2,
//   - every entry finite and non-negative,
//   - diagonal ≈ 0 within metricTol,
//   - symmetric within metricTol (asymmetric instances are out of scope).
//
// Returns n (metric order) on success.
//
// Complexity: O(n²).
func validateMetric(m Metric) (int, error) {
	if m == nil {
		return 0, ErrNilMetric
	}
	var n = m.N()
	if n < 2 {
		return 0, ErrTooFewCities
	}

	var (
		i   int
		j   int
		w   float64
		abs float64
	)

	// Diagonal: must be ≈ 0 and finite.
	for i = 0; i < n; i++ {
		w = m.At(i, i)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrBadMetric
		}
		abs = w
		if abs < 0 {
			abs = -abs
		}
		if abs > metricTol {
			return 0, ErrBadMetric
		}
	}

	// Off-diagonal scan: finite, non-negative, symmetric.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = m.At(i, j)
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return 0, ErrBadMetric
			}
			abs = w - m.At(j, i)
			if abs < 0 {
				abs = -abs
			}
			if abs > metricTol {
				return 0, ErrBadMetric
			}
		}
	}

	return n, nil
}

// Package anneal - tour length computation.
//
// TourLength is the single costing path shared by the loop and by callers;
// it is side-effect free and allocation free.
//
// Design:
//   - Strict sentinels on invalid input (treated as contract violations).
//   - Defensive NaN/negative checks even though Optimize validates the
//     metric up front: TourLength is public API and may see stub metrics.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package anneal

import "math"

// roundScale controls final length stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// TourLength returns the total length of the closed cycle described by tour:
// the sum of distances between consecutive cities plus the wrap-around edge
// from the last city back to the first.
//
// Contract:
//   - m non-nil with N() ≥ 2; tour indices within [0..N-1].
//   - Returns ErrNilMetric, ErrTooFewCities, ErrIndexOutOfRange, or
//     ErrBadMetric.
//
// Complexity: O(n) time, O(1) space.
func TourLength(m Metric, tour []int) (float64, error) {
	if m == nil {
		return 0, ErrNilMetric
	}
	var n = m.N()
	if n < 2 || len(tour) < 2 {
		return 0, ErrTooFewCities
	}

	var (
		sum float64
		i   int
		u   int
		v   int
		w   float64
		L   = len(tour)
	)
	for i = 0; i < L; i++ {
		u = tour[i]
		v = tour[(i+1)%L] // closing edge when i == L-1

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrIndexOutOfRange
		}

		w = m.At(u, v)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, ErrBadMetric
		}

		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

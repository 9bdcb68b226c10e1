// Package anneal_test provides lightweight helpers shared across *_test.go
// files in this package. The helpers are intentionally minimal, stdlib-only,
// and exercise the optimizer through its public API.
package anneal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/satour/satour/anneal"
	"github.com/satour/satour/geo"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used wherever randomness is exercised.
	// Non-zero by design: seed 0 selects a time-based stream in production.
	seedDet = int64(42)

	// lenTol is the tolerance for comparing stabilized tour lengths.
	lenTol = 1e-9
)

// unitSquare is the canonical 4-city instance: optimal tour length 4.0
// visiting the corners in boundary order.
var unitSquare = []geo.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

// -----------------------------------------------------------------------------
// Minimal metric implementations (production matrix + raw stub)
// -----------------------------------------------------------------------------

// euclid builds the production distance matrix from 2-D points.
func euclid(pts []geo.Point) anneal.Metric {
	return geo.NewDistMatrix(pts)
}

// stubMetric is a raw table-backed metric used to inject malformed values
// (NaN, negatives, asymmetry) that geo.NewDistMatrix can never produce.
type stubMetric struct{ a [][]float64 }

func (m stubMetric) N() int { return len(m.a) }
func (m stubMetric) At(i, j int) float64 {
	return m.a[i][j]
}

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustLen computes TourLength and fails the test on error.
func mustLen(t *testing.T, m anneal.Metric, tour []int) float64 {
	t.Helper()
	l, err := anneal.TourLength(m, tour)
	if err != nil {
		t.Fatalf("TourLength(%v) failed: %v", tour, err)
	}

	return l
}

// floatsClose checks absolute closeness of two float64 values.
func floatsClose(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// rotated returns tour cyclically rotated left by k positions.
func rotated(tour []int, k int) []int {
	n := len(tour)
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[(i+k)%n]
	}

	return out
}

// reversed returns tour in reverse order.
func reversed(tour []int) []int {
	n := len(tour)
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[n-1-i]
	}

	return out
}

package geo

import "math"

// Point is an immutable 2-D city coordinate.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between a and b.
// It is non-negative, symmetric, and zero iff a == b.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistMatrix is a dense n×n table of pairwise Euclidean distances stored in a
// flat slice (w[i*n+j]), which keeps lookups cache-friendly and free of
// interface indirection in hot loops.
type DistMatrix struct {
	n int
	w []float64
}

// NewDistMatrix precomputes all pairwise distances for pts.
// The diagonal is exactly zero and the matrix is symmetric by construction.
//
// Complexity: O(n²) time, O(n²) space.
func NewDistMatrix(pts []Point) *DistMatrix {
	var (
		n = len(pts)
		w = make([]float64, n*n)
		i int
		j int
		d float64
	)
	// Fill the upper triangle and mirror; the diagonal stays zero.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(pts[i], pts[j])
			w[i*n+j] = d
			w[j*n+i] = d
		}
	}

	return &DistMatrix{n: n, w: w}
}

// N returns the matrix order (number of cities).
func (m *DistMatrix) N() int { return m.n }

// At returns the distance between cities i and j.
// Indices must be in [0..N-1]; callers are expected to validate tours up
// front (see anneal.ValidatePermutation), so no per-lookup bounds check is
// performed here.
//
// Complexity: O(1).
func (m *DistMatrix) At(i, j int) float64 {
	return m.w[i*m.n+j]
}

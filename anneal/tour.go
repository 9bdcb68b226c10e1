// Package anneal - tour utilities.
//
// A tour is an open permutation of city indices {0..n-1}; the closing edge
// from the last city back to the first is implicit. These helpers operate
// purely on tour structure, without touching distance metrics.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for all helpers; in-place mutation where a copy is not owed
//     to the caller.
package anneal

import "math/rand"

// ValidatePermutation checks that tour is a permutation of {0..n-1} of
// length n: every index present exactly once, none out of range.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrBadPermutation
		}
		if seen[v] {
			return ErrBadPermutation
		}
		seen[v] = true
	}

	return nil
}

// IdentityPermutation returns [0, 1, …, n-1].
//
// Complexity: O(n).
func IdentityPermutation(n int) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}

	return p
}

// RandomPermutation returns a uniformly random permutation of {0..n-1}
// drawn from rng.
//
// Complexity: O(n).
func RandomPermutation(n int, rng *rand.Rand) []int {
	p := IdentityPermutation(n)
	shuffleIntsInPlace(p, rng)

	return p
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// reverseSegmentInPlace reverses the inclusive segment tour[i..k] in place.
// This is the 2-opt primitive: on a closed cycle it replaces edges
// (tour[i-1],tour[i]) and (tour[k],tour[k+1]) with their crossed pair.
//
// Contract: 0 ≤ i < k ≤ len(tour)-1 (enforced by the move generator).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

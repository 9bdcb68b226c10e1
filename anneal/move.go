// Package anneal - neighbor-move generation.
//
// A move takes the current tour and produces a candidate differing by one
// randomized perturbation. Both policies preserve the permutation invariant
// by construction: reversal reorders a contiguous segment, swap exchanges
// two entries.
package anneal

import "math/rand"

// MovePolicy selects the neighborhood used to generate candidate tours.
type MovePolicy int

const (
	// MoveReverse reverses a random contiguous segment (2-opt move).
	// This is the default and the stronger neighborhood for planar tours:
	// it uncrosses edges in a single step.
	MoveReverse MovePolicy = iota

	// MoveSwap exchanges two random positions.
	MoveSwap
)

// String returns the policy name used in configuration files and logs.
func (p MovePolicy) String() string {
	switch p {
	case MoveReverse:
		return "reverse"
	case MoveSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// Neighbor writes into dst a candidate tour derived from src by one
// perturbation under the given policy. dst and src must have equal length
// ≥ 2 and must not alias; src is never mutated, so the current tour stays
// valid when the candidate is rejected.
//
// The two perturbation positions are distinct and chosen uniformly at
// random from rng.
//
// Complexity: O(n) time (copy dominates), O(1) extra space.
func Neighbor(dst, src []int, policy MovePolicy, rng *rand.Rand) error {
	var n = len(src)
	if n < 2 || len(dst) != n {
		return ErrBadPermutation
	}
	copy(dst, src)

	// Two distinct positions, uniform over all ordered-distinct pairs.
	var (
		i = rng.Intn(n)
		j = rng.Intn(n - 1)
	)
	if j >= i {
		j++
	}
	if j < i {
		i, j = j, i
	}

	switch policy {
	case MoveReverse:
		reverseSegmentInPlace(dst, i, j)
	case MoveSwap:
		dst[i], dst[j] = dst[j], dst[i]
	default:
		return ErrBadMovePolicy
	}

	return nil
}

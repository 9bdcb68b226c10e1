// Package anneal - Metropolis acceptance rule.
package anneal

import (
	"math"
	"math/rand"
)

// tempFloor is the temperature below which all worsening moves are rejected
// outright, keeping exp(-delta/temp) well-posed near zero.
const tempFloor = 1e-12

// Accept decides whether a candidate tour replaces the current one.
//
// Rule:
//   - delta ≤ 0: accept unconditionally (candidate at least as good).
//   - delta > 0: accept with probability exp(-delta/temp) against a uniform
//     draw in [0,1); for temp ≤ tempFloor the probability is treated as 0.
//
// Complexity: O(1).
func Accept(delta, temp float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if temp <= tempFloor {
		return false
	}

	return rng.Float64() < math.Exp(-delta/temp)
}

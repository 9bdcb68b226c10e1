// Package anneal - RNG utilities for the annealing loop.
//
// This file centralizes random generation for the optimizer.
//
// Goals:
//   - Determinism: a non-zero seed ⇒ identical runs across platforms.
//   - Encapsulation: one RNG per run, passed explicitly; no ambient
//     package-global state.
//   - Reproducible restarts: DeriveSeed builds independent per-run seeds
//     from one base seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A run owns its *rand.Rand and
//     consumes it sequentially; do not share one across goroutines.
package anneal

import (
	"math/rand"
	"time"
)

// rngFromSeed returns the run's *rand.Rand.
// Policy: seed==0 ⇒ time-based seed (production default); otherwise the
// provided seed is used verbatim for reproducible runs.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a base seed and a run index into a new 64-bit seed.
//
// Rationale:
//   - Multi-restart searches need independent substreams per run while
//     staying reproducible from a single base seed.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     consecutive run indices.
//
// The constants are the canonical SplitMix64 multipliers/finalizer; small
// input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func DeriveSeed(base int64, run uint64) int64 {
	var x uint64
	x = uint64(base) ^ (run + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var (
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Package anneal_test exercises the Metropolis acceptance rule at its
// boundary cases: improving deltas, vanishing temperature, and the
// near-certain acceptance regime at very high temperature.
package anneal_test

import (
	"math/rand"
	"testing"

	"github.com/satour/satour/anneal"
)

// TestAccept_ImprovingAlwaysAccepted: delta ≤ 0 ⇒ probability exactly 1,
// regardless of temperature.
func TestAccept_ImprovingAlwaysAccepted(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	deltas := []float64{0, -1e-12, -0.5, -1e6}
	temps := []float64{0, 1e-30, 0.01, 1, 1e9}

	for _, d := range deltas {
		for _, temp := range temps {
			Repeat(t, 20, func(t *testing.T) {
				if !anneal.Accept(d, temp, rng) {
					t.Fatalf("improving delta %g rejected at temp %g", d, temp)
				}
			})
		}
	}
}

// TestAccept_FrozenRejectsWorsening: at (near-)zero temperature every
// positive delta must be rejected, with no division blow-up.
func TestAccept_FrozenRejectsWorsening(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	temps := []float64{0, 1e-13, 1e-12} // at and below the internal floor

	for _, temp := range temps {
		Repeat(t, 100, func(t *testing.T) {
			if anneal.Accept(1e-9, temp, rng) {
				t.Fatalf("worsening delta accepted at frozen temp %g", temp)
			}
		})
	}
}

// TestAccept_HotAcceptsAlmostSurely: with delta/temp ≈ 0 the acceptance
// probability is 1-ε; every draw in a modest sample must pass.
func TestAccept_HotAcceptsAlmostSurely(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))

	Repeat(t, 1000, func(t *testing.T) {
		if !anneal.Accept(1e-9, 1e9, rng) {
			t.Fatalf("tiny worsening delta rejected at very high temperature")
		}
	})
}

// TestAccept_ColdBiasesDown: at a moderate temperature a large delta must be
// rejected far more often than accepted. Deterministic under seedDet.
func TestAccept_ColdBiasesDown(t *testing.T) {
	var (
		rng      = rand.New(rand.NewSource(seedDet))
		accepted int
		i        int
	)
	// exp(-10/1) ≈ 4.5e-5: expect ~0 acceptances out of 1000.
	for i = 0; i < 1000; i++ {
		if anneal.Accept(10, 1, rng) {
			accepted++
		}
	}
	if accepted > 5 {
		t.Fatalf("accepted %d/1000 large-delta moves at temp 1; want near zero", accepted)
	}
}

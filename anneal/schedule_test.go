// Package anneal_test exercises the geometric cooling schedule:
// determinism, monotone non-increase, and the exhaustion predicate.
package anneal_test

import (
	"testing"

	"github.com/satour/satour/anneal"
)

func TestSchedule_MonotoneNonIncreasing(t *testing.T) {
	s := anneal.Schedule{Initial: 100, Decay: 0.995, Floor: 0.01}

	var (
		prev = s.TemperatureAt(0)
		step int
		cur  float64
	)
	if prev != s.Initial {
		t.Fatalf("TemperatureAt(0) = %g, want %g", prev, s.Initial)
	}

	for step = 1; step <= 5000; step++ {
		cur = s.TemperatureAt(step)
		if cur < 0 {
			t.Fatalf("negative temperature %g at step %d", cur, step)
		}
		if cur > prev {
			t.Fatalf("temperature increased at step %d: %g > %g", step, cur, prev)
		}
		prev = cur
	}
}

func TestSchedule_Deterministic(t *testing.T) {
	s := anneal.Schedule{Initial: 50, Decay: 0.9, Floor: 1}

	steps := []int{0, 1, 7, 100, -3}
	for _, step := range steps {
		if s.TemperatureAt(step) != s.TemperatureAt(step) {
			t.Fatalf("TemperatureAt(%d) not deterministic", step)
		}
	}
	// Negative steps clamp to the initial temperature.
	if got := s.TemperatureAt(-3); got != s.Initial {
		t.Fatalf("TemperatureAt(-3) = %g, want %g", got, s.Initial)
	}
}

func TestSchedule_Exhausted(t *testing.T) {
	s := anneal.Schedule{Initial: 100, Decay: 0.995, Floor: 0.01}

	if s.Exhausted(s.Initial) {
		t.Fatalf("schedule exhausted at initial temperature")
	}
	if s.Exhausted(s.Floor) {
		t.Fatalf("floor itself must not count as exhausted (strict below)")
	}
	if !s.Exhausted(s.Floor / 2) {
		t.Fatalf("temperature below floor not reported as exhausted")
	}
}

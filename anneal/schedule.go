// Package anneal - geometric cooling schedule.
package anneal

import "math"

// Schedule is the deterministic temperature trajectory of a run:
// T(step) = Initial · Decay^step, with 0 < Decay < 1, so the temperature is
// positive and monotonically non-increasing over steps. The schedule is
// exhausted once the temperature falls below Floor.
//
// Read-only after construction.
type Schedule struct {
	Initial float64 // starting temperature, > 0
	Decay   float64 // geometric cooling factor, in (0,1)
	Floor   float64 // stopping floor, > 0
}

// TemperatureAt returns the temperature for the given step index.
// Deterministic given the schedule parameters; steps < 0 are clamped to 0.
//
// Complexity: O(1).
func (s Schedule) TemperatureAt(step int) float64 {
	if step <= 0 {
		return s.Initial
	}

	return s.Initial * math.Pow(s.Decay, float64(step))
}

// Exhausted reports whether temp has fallen below the stopping floor.
//
// Complexity: O(1).
func (s Schedule) Exhausted(temp float64) bool {
	return temp < s.Floor
}

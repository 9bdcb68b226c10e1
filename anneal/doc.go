// Package anneal approximates a shortest closed tour over a fixed set of
// cities with simulated annealing.
//
// The search starts from a permutation of city indices, repeatedly perturbs
// it (segment reversal or pairwise swap), and accepts candidates by the
// Metropolis criterion under a geometrically cooling temperature:
//
//   - improving candidates (Δ ≤ 0) are always accepted,
//   - worsening candidates are accepted with probability exp(−Δ/T).
//
// The run stops when the temperature falls below a configured floor
// (StopConverged) or when the iteration cap is reached (StopIterationLimit),
// whichever comes first, and yields the best tour seen.
//
// Distances come from a Metric (typically *geo.DistMatrix). All randomness is
// owned by the run: a non-zero Options.Seed makes two runs bit-identical, a
// zero seed falls back to a time-based seed for production use.
//
// Complexity: O(MaxIterations·n) time for n cities, O(n) extra space.
package anneal

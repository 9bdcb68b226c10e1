// Package anneal - the annealing loop.
//
// Optimize is the canonical entry point: it validates the metric and the
// configuration, builds the run's RNG and starting tour, then iterates
// generate → cost → accept → cool until the schedule is exhausted or the
// iteration cap is hit.
//
// Design principles:
//   - Fail fast: every precondition is checked before the first iteration;
//     the loop body has no error paths and performs no I/O.
//   - Best never regresses: the incumbent is replaced only on a strict
//     improvement of the accepted tour.
//   - One candidate buffer is reused across iterations; acceptance swaps the
//     current and candidate slices instead of copying.
package anneal

// Optimize runs simulated annealing over the given metric and returns the
// best tour found with its length.
//
// Contracts:
//   - m non-nil, n ≥ 2, entries finite/non-negative/symmetric (validateMetric).
//   - opts within range (validateOptions); opts.InitialTour, when set, must
//     be a valid permutation of {0..n-1}.
//
// Errors: strict sentinels from types.go; none once the loop has started.
//
// Complexity: O(MaxIterations·n) time, O(n) extra space.
func Optimize(m Metric, opts Options) (Result, error) {
	// Stage 1 - preconditions.
	n, err := validateMetric(m)
	if err != nil {
		return Result{}, err
	}
	if err = validateOptions(opts); err != nil {
		return Result{}, err
	}

	// Stage 2 - run state: RNG, starting tour, schedule.
	rng := rngFromSeed(opts.Seed)

	var cur []int
	if opts.InitialTour != nil {
		if err = ValidatePermutation(opts.InitialTour, n); err != nil {
			return Result{}, err
		}
		cur = CopyTour(opts.InitialTour)
	} else {
		cur = RandomPermutation(n, rng)
	}

	curLen, err := TourLength(m, cur)
	if err != nil {
		return Result{}, err
	}

	var (
		best    = CopyTour(cur)
		bestLen = curLen
		sched   = Schedule{Initial: opts.InitialTemp, Decay: opts.DecayRate, Floor: opts.MinTemp}
		temp    = sched.Initial
	)

	// With exactly two cities every permutation is the same closed cycle;
	// the search has nothing to do.
	if n == 2 {
		return Result{Tour: best, Length: bestLen, Iterations: 0, FinalTemp: temp, Stop: StopConverged}, nil
	}

	// Stage 3 - the loop. The candidate buffer is reused; on acceptance the
	// current and candidate slices swap roles.
	var (
		cand    = make([]int, n)
		candLen float64
		delta   float64
		step    int
		stop    = StopIterationLimit
	)
	for step = 0; step < opts.MaxIterations; step++ {
		if sched.Exhausted(temp) {
			stop = StopConverged
			break
		}

		// Candidate generation cannot fail here: cur is a validated
		// permutation and the policy was checked up front.
		_ = Neighbor(cand, cur, opts.Move, rng)

		candLen, err = TourLength(m, cand)
		if err != nil {
			return Result{}, err
		}
		delta = candLen - curLen

		if Accept(delta, temp, rng) {
			cur, cand = cand, cur
			curLen = candLen

			if curLen < bestLen {
				bestLen = curLen
				copy(best, cur)
			}
		}

		temp *= sched.Decay
	}

	return Result{
		Tour:       best,
		Length:     round1e9(bestLen),
		Iterations: step,
		FinalTemp:  temp,
		Stop:       stop,
	}, nil
}

package slackform

// FindOptimal runs Bland's-rule simplex iteration to completion, assuming
// the dictionary is already basic-feasible (every b[i] >= 0 — call
// Initialize first if that is not already known). It returns Optimal
// with the primal solution vector, or Unbounded.
func (lp *LP) FindOptimal() (Result, error) {
	iter := 0
	for {
		sel, err := lp.FindEnteringAndLeaving()
		if err != nil {
			return Result{}, err
		}

		switch sel.Kind {
		case Finished:
			return lp.solution(), nil
		case SelectionUnbounded:
			return Result{Kind: Unbounded}, nil
		case Switch:
			iter++
			if lp.MaxIterations > 0 && iter > lp.MaxIterations {
				return Result{}, ErrIterationLimitExceeded
			}
			if err := lp.Pivot(sel.Col, sel.Row); err != nil {
				return Result{}, err
			}
		}
	}
}

// solution extracts the primal decision vector: x[B[i]] = b[i] for every
// basic variable whose index falls within the range [0, n); slack
// variables never contribute. During Initialize the auxiliary variable
// has index n-1, so its value is part of the returned vector.
func (lp *LP) solution() Result {
	x := make([]float64, lp.n)
	for i, bi := range lp.B {
		if bi < lp.n {
			x[bi] = lp.b[i]
		}
	}
	return Result{Kind: Optimal, X: x}
}

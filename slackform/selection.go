package slackform

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SelectionKind tags the outcome of FindEnteringAndLeaving.
type SelectionKind int

const (
	// Switch means an entering column and leaving row were found; the
	// caller should Pivot(Col, Row) and iterate.
	Switch SelectionKind = iota
	// Finished means no column has a positive reduced cost: the
	// current dictionary is optimal.
	Finished
	// SelectionUnbounded means some improving column has no leaving
	// candidate: the objective is unbounded.
	SelectionUnbounded
)

// Selection is the result of one round of Bland's-rule entering/leaving
// selection.
type Selection struct {
	Kind SelectionKind
	Col  int
	Row  int
}

// Leaving is the result of a leaving-row search for a single entering
// column.
type Leaving struct {
	Unbounded bool
	Delta     float64
	Row       int
	BasicVar  int
}

// FindLeaving scans the rows of the dictionary for candidates to leave
// the basis when col enters: row i is a candidate iff b[i] >= 0 and
// A[i][col] < 0. Among candidates it picks the one minimizing
// delta_i = b[i] / -A[i][col], breaking ties by the smallest row index.
// If there is no candidate, it reports Unbounded. Fails with
// ErrOutOfRange if col >= n.
func (lp *LP) FindLeaving(col int) (Leaving, error) {
	if err := lp.checkColumn(col); err != nil {
		return Leaving{}, err
	}

	deltas := make([]float64, lp.m)
	anyCandidate := false
	for i := 0; i < lp.m; i++ {
		aic := lp.A.At(i, col)
		if lp.b[i] >= 0 && aic < 0 {
			deltas[i] = lp.b[i] / -aic
			anyCandidate = true
		} else {
			deltas[i] = math.Inf(1)
		}
	}

	if !anyCandidate {
		return Leaving{Unbounded: true}, nil
	}

	// floats.MinIdx only advances its running index on a strictly
	// smaller value, so the first (smallest-index) row achieving the
	// minimum wins ties — exactly Bland's-rule leaving selection.
	row := floats.MinIdx(deltas)

	return Leaving{
		Delta:    deltas[row],
		Row:      row,
		BasicVar: lp.B[row],
	}, nil
}

// FindEnteringAndLeaving runs one round of Bland's-rule selection: it
// considers every non-basic column with a positive reduced cost as an
// improving direction, finds its leaving row, and — unless any improving
// column is unbounded, in which case the whole LP is unbounded — picks
// the column whose non-basic variable N[col] has the smallest index.
func (lp *LP) FindEnteringAndLeaving() (Selection, error) {
	type candidate struct {
		col, row int
	}
	var candidates []candidate

	for col := 0; col < lp.n; col++ {
		if lp.c[col] <= 0 {
			continue
		}
		leaving, err := lp.FindLeaving(col)
		if err != nil {
			return Selection{}, err
		}
		if leaving.Unbounded {
			return Selection{Kind: SelectionUnbounded}, nil
		}
		candidates = append(candidates, candidate{col: col, row: leaving.Row})
	}

	if len(candidates) == 0 {
		return Selection{Kind: Finished}, nil
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if lp.N[cand.col] < lp.N[best.col] {
			best = cand
		}
	}

	Trace("entering col=%d (var %d) leaving row=%d (var %d)\n", best.col, lp.N[best.col], best.row, lp.B[best.row])

	return Selection{Kind: Switch, Col: best.col, Row: best.row}, nil
}

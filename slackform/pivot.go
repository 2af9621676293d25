package slackform

import "github.com/pkg/errors"

// Pivot rewrites the dictionary so that the non-basic variable at column
// col enters the basis in place of the basic variable currently at row
// row. The caller must guarantee A[row][col] != 0; this is the chosen
// entering/leaving pair from FindEnteringAndLeaving, never re-validated
// here (spec.md §4.2: "No feasibility check is performed").
func (lp *LP) Pivot(col, row int) error {
	a := lp.A.At(row, col)

	Trace("pivot col=%d row=%d a=%v\n", col, row, a)

	lp.N[col], lp.B[row] = lp.B[row], lp.N[col]

	d := -a
	lp.b[row] /= d

	// Build the new pivot row R from the old row `row` before anything
	// in that row is overwritten.
	R := make([]float64, lp.n)
	R[col] = -1 / d
	for j := 0; j < lp.n; j++ {
		if j == col {
			continue
		}
		R[j] = lp.A.At(row, j) / d
	}

	for i := 0; i < lp.m; i++ {
		if i == row {
			continue
		}
		aic := lp.A.At(i, col)
		lp.b[i] += lp.b[row] * aic
		for j := 0; j < lp.n; j++ {
			if j == col {
				continue
			}
			lp.A.Set(i, j, lp.A.At(i, j)+R[j]*aic)
		}
		lp.A.Set(i, col, R[col]*aic)
	}

	cc := lp.c[col]
	lp.v += lp.b[row] * cc
	for j := 0; j < lp.n; j++ {
		if j == col {
			continue
		}
		lp.c[j] += R[j] * cc
	}
	lp.c[col] = R[col] * cc

	for j := 0; j < lp.n; j++ {
		lp.A.Set(row, j, R[j])
	}

	return nil
}

// checkColumn returns ErrOutOfRange (wrapped with the offending index)
// if col does not address a valid non-basic column.
func (lp *LP) checkColumn(col int) error {
	if col < 0 || col >= lp.n {
		return errors.Wrapf(ErrOutOfRange, "column %d, n=%d", col, lp.n)
	}
	return nil
}

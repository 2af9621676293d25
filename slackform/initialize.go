package slackform

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// InitOutcome tags the result of Initialize.
type InitOutcome int

const (
	// Done means the dictionary is now basic-feasible (every b[i] >= 0)
	// and FindOptimal may proceed.
	Done InitOutcome = iota
	// InitInfeasible means the two-phase auxiliary LP proved the
	// original LP has no feasible point.
	InitInfeasible
)

// Initialize brings the dictionary to a basic-feasible state, running the
// two-phase auxiliary-LP construction of spec.md §4.5 when the trivial
// basic solution (x = 0) is infeasible, i.e. some b[i] < 0.
func (lp *LP) Initialize() (InitOutcome, error) {
	if lp.feasible() {
		return Done, nil
	}

	k := argMin(lp.b)
	cOrig := append([]float64(nil), lp.c...)

	auxIdx := lp.n
	lp.N = append(lp.N, auxIdx)
	for i := range lp.B {
		lp.B[i]++
	}
	lp.n++

	lp.A = appendOnesColumn(lp.A)

	lp.c = make([]float64, lp.n)
	lp.c[lp.n-1] = -1
	lp.v = 0

	Trace("initialize: auxiliary variable x_%d introduced, pivoting row %d\n", auxIdx, k)

	if err := lp.Pivot(lp.n-1, k); err != nil {
		return 0, err
	}

	result, err := lp.FindOptimal()
	if err != nil {
		return 0, err
	}

	auxVar := lp.n - 1
	if result.Kind != Optimal || result.X[auxVar] != 0 {
		return InitInfeasible, nil
	}

	if row, inBasis := lp.rowOf(auxVar); inBasis {
		col := -1
		for j := 0; j < lp.n; j++ {
			if lp.A.At(row, j) != 0 {
				col = j
				break
			}
		}
		if col == -1 {
			return 0, errors.Wrapf(ErrInternalInconsistency, "auxiliary row %d is entirely zero", row)
		}
		if err := lp.Pivot(col, row); err != nil {
			return 0, err
		}
	}

	cStar := -1
	for j, nj := range lp.N {
		if nj == auxVar {
			cStar = j
			break
		}
	}
	if cStar == -1 {
		return 0, errors.Wrap(ErrInternalInconsistency, "auxiliary variable is not non-basic after degeneracy handling")
	}

	lp.N = append(lp.N[:cStar], lp.N[cStar+1:]...)
	lp.A = removeColumn(lp.A, cStar)
	lp.c = append(lp.c[:cStar], lp.c[cStar+1:]...)
	lp.n--

	for j, nj := range lp.N {
		if nj >= lp.n {
			lp.N[j] = nj - 1
		}
	}
	for i, bi := range lp.B {
		if bi >= lp.n {
			lp.B[i] = bi - 1
		}
	}

	objective := make([]float64, lp.n)
	v := lp.v
	for i, bi := range lp.B {
		if bi >= lp.n {
			continue
		}
		gamma := cOrig[bi]
		v += lp.b[i] * gamma
		for j := 0; j < lp.n; j++ {
			objective[j] += lp.A.At(i, j) * gamma
		}
	}
	for j, nj := range lp.N {
		if nj < lp.n {
			objective[j] += cOrig[nj]
		}
	}
	lp.c = objective
	lp.v = v

	return Done, nil
}

// feasible reports whether the trivial basic solution (every non-basic
// variable at zero) already satisfies b[i] >= 0 for all i.
func (lp *LP) feasible() bool {
	for _, bi := range lp.b {
		if bi < 0 {
			return false
		}
	}
	return true
}

// rowOf returns the row index of basicVar in B, if it is currently basic.
func (lp *LP) rowOf(basicVar int) (int, bool) {
	for i, bi := range lp.B {
		if bi == basicVar {
			return i, true
		}
	}
	return -1, false
}

// argMin returns the index of the smallest element of v, breaking ties
// by the smallest index.
func argMin(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] < v[best] {
			best = i
		}
	}
	return best
}

// appendOnesColumn returns a copy of a with one additional column of all
// ones appended on the right.
func appendOnesColumn(a *mat.Dense) *mat.Dense {
	m, n := a.Dims()
	out := mat.NewDense(m, n+1, nil)
	out.Copy(a)
	for i := 0; i < m; i++ {
		out.Set(i, n, 1)
	}
	return out
}

// removeColumn returns a copy of a with column idx removed.
func removeColumn(a *mat.Dense, idx int) *mat.Dense {
	m, n := a.Dims()
	out := mat.NewDense(m, n-1, nil)
	for i := 0; i < m; i++ {
		col := 0
		for j := 0; j < n; j++ {
			if j == idx {
				continue
			}
			out.Set(i, col, a.At(i, j))
			col++
		}
	}
	return out
}

// Package standardform implements the canonical "maximize c·x subject to
// A·x <= b, x >= 0" representation of a linear program, and its
// transformation into slack form for the simplex engine to consume.
package standardform

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/askiada/simplex/internal/validate"
	"github.com/askiada/simplex/slackform"
)

// LP is a standard-form linear program: maximize c·x subject to
// A·x <= b, x >= 0. Free records the original positions of variables
// that were split into x_i+ - x_i- by a caller (typically the builder)
// before construction; it exists purely so the solution can later be
// reconstructed by that same caller — this package never recombines it.
type LP struct {
	c    []float64
	a    *mat.Dense
	b    []float64
	Free []int
}

// New validates and constructs a standard-form LP. It fails with a
// wrapped ErrShapeMismatch if A, b or c is empty, if any row of A has a
// length other than len(c), or if len(b) does not match the number of
// rows of A. If free is not sorted-ascending, unique and in range
// [0, n), it fails with a wrapped ErrOutOfRange, not ErrShapeMismatch.
func New(c []float64, a *mat.Dense, b []float64, free []int) (*LP, error) {
	if len(c) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "objective vector c must not be empty")
	}
	if a == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "constraint matrix a must not be nil")
	}
	m, n := a.Dims()
	if m == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "constraint matrix a must not be empty")
	}
	if len(b) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "right-hand side b must not be empty")
	}
	if n != len(c) {
		return nil, errors.Wrapf(ErrShapeMismatch, "a has %d columns, c has length %d", n, len(c))
	}
	if m != len(b) {
		return nil, errors.Wrapf(ErrShapeMismatch, "a has %d rows, b has length %d", m, len(b))
	}
	if free != nil {
		if !validate.IsSortedUnique(free) {
			return nil, errors.Wrap(ErrOutOfRange, "free-variable indices must be sorted and unique")
		}
		if !validate.InBounds(free, n) {
			return nil, errors.Wrap(ErrOutOfRange, "free-variable indices out of range")
		}
	}

	return &LP{c: append([]float64(nil), c...), a: mat.DenseCopyOf(a), b: append([]float64(nil), b...), Free: free}, nil
}

// N returns the number of decision variables.
func (lp *LP) N() int { return len(lp.c) }

// M returns the number of constraints.
func (lp *LP) M() int { return len(lp.b) }

// C returns the objective coefficients (read-only view).
func (lp *LP) C() []float64 { return lp.c }

// A returns the constraint matrix (read-only view).
func (lp *LP) A() *mat.Dense { return lp.a }

// B returns the constraint right-hand side (read-only view).
func (lp *LP) B() []float64 { return lp.b }

// String renders the standard-form LP for diagnostics; never used by
// this package itself, only by callers wanting to log or trace a
// construction before calling IntoSlackForm.
func (lp *LP) String() string {
	s := "maximize"
	for j, cj := range lp.c {
		s += fmt.Sprintf(" + %.4f*x_%d", cj, j)
	}
	for i := 0; i < len(lp.b); i++ {
		s += "\nsubject to"
		for j := 0; j < len(lp.c); j++ {
			s += fmt.Sprintf(" + %.4f*x_%d", lp.a.At(i, j), j)
		}
		s += fmt.Sprintf(" <= %.4f", lp.b[i])
	}
	return s
}

// IntoSlackForm consumes the standard-form LP and produces the
// equivalent slack-form dictionary: A is negated so the dictionary uses
// the "minus-sum" convention (x_B[i] = b_i - sum_j A[i][j]*x_N[j]), N is
// (0, ..., n-1), B is (n, ..., n+m-1), and v starts at zero.
func (lp *LP) IntoSlackForm() (*slackform.LP, error) {
	m, n := lp.a.Dims()
	negA := mat.NewDense(m, n, nil)
	negA.Scale(-1, lp.a)

	return slackform.New(negA, lp.b, lp.c)
}

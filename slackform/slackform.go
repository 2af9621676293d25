// Package slackform implements the slack-form (dictionary) representation
// of a linear program used by the two-phase simplex method: the pivot
// operation, Bland's-rule entering/leaving selection, the two-phase
// initialization that handles an infeasible trivial basic solution, and
// primal-solution extraction.
//
// Throughout, A is stored in "minus-sum" convention: it holds the
// negation of the constraint coefficients, so the basic variable at row i
// equals b[i] + sum_j A[i][j]*x[N[j]] (that is, b[i] minus the sum of the
// original coefficients times the non-basic variables). A caller
// constructing an LP directly (rather than via
// standardform.LP.IntoSlackForm) must negate their constraint matrix
// accordingly.
package slackform

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LP is a slack-form linear program (dictionary). N and B always form a
// disjoint partition of {0, ..., n+m-1}; every variable is implicitly
// constrained to be >= 0.
type LP struct {
	n int // number of non-basic (decision + auxiliary) columns currently tracked
	m int // number of rows / basic variables, fixed for the life of the LP

	N []int // non-basic variable indices, length n
	B []int // basic variable indices, length m
	A *mat.Dense
	b []float64
	c []float64
	v float64

	// MaxIterations bounds FindOptimal's main loop when positive. Zero
	// (the default) means unlimited, relying on Bland's rule to
	// guarantee termination.
	MaxIterations int
}

// New validates and constructs a slack-form LP whose A is already in
// minus-sum convention (as produced by standardform.LP.IntoSlackForm).
// N is set to (0, ..., n-1) and B to (n, ..., n+m-1).
func New(a *mat.Dense, b, c []float64) (*LP, error) {
	if a == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "A must not be nil")
	}
	m, n := a.Dims()
	if m == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "A must not be empty")
	}
	if len(b) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "b must not be empty")
	}
	if len(c) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "c must not be empty")
	}
	if n != len(c) {
		return nil, errors.Wrapf(ErrShapeMismatch, "A has %d columns, c has length %d", n, len(c))
	}
	if m != len(b) {
		return nil, errors.Wrapf(ErrShapeMismatch, "A has %d rows, b has length %d", m, len(b))
	}

	N := make([]int, n)
	for j := range N {
		N[j] = j
	}
	B := make([]int, m)
	for i := range B {
		B[i] = n + i
	}

	return &LP{
		n: n,
		m: m,
		N: N,
		B: B,
		A: mat.DenseCopyOf(a),
		b: append([]float64(nil), b...),
		c: append([]float64(nil), c...),
		v: 0,
	}, nil
}

// NonBasic returns the current non-basic variable index list (read-only view).
func (lp *LP) NonBasic() []int { return lp.N }

// Basic returns the current basic variable index list (read-only view).
func (lp *LP) Basic() []int { return lp.B }

// Dim returns the current non-basic dimension n (decision variables plus
// any in-flight auxiliary variable).
func (lp *LP) Dim() int { return lp.n }

// Rows returns the number of constraints m.
func (lp *LP) Rows() int { return lp.m }

// String renders the dictionary for diagnostics; never used by the
// solver itself, only by Trace callers.
func (lp *LP) String() string {
	s := fmt.Sprintf("z = %.4f", lp.v)
	for j, nj := range lp.N {
		s += fmt.Sprintf(" + %.4f*x_%d", lp.c[j], nj)
	}
	for i, bi := range lp.B {
		s += fmt.Sprintf("\nx_%d = %.4f", bi, lp.b[i])
		for j, nj := range lp.N {
			s += fmt.Sprintf(" + %.4f*x_%d", lp.A.At(i, j), nj)
		}
	}
	return s
}

// ResultKind tags the three possible outcomes of solving an LP.
type ResultKind int

const (
	// Optimal means X holds a primal-feasible optimal solution.
	Optimal ResultKind = iota
	// Unbounded means the objective can be made arbitrarily large.
	Unbounded
	// Infeasible means no point satisfies the constraints.
	Infeasible
)

func (k ResultKind) String() string {
	switch k {
	case Optimal:
		return "Optimal"
	case Unbounded:
		return "Unbounded"
	case Infeasible:
		return "Infeasible"
	default:
		return "Unknown"
	}
}

// Result is the tagged outcome of FindOptimal / simplex.Solve. X is only
// meaningful when Kind == Optimal.
type Result struct {
	Kind ResultKind
	X    []float64
}

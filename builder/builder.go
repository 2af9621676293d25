// Package builder is the fluent collaborator that accepts an objective
// and a sequence of constraints one at a time and compiles them into a
// standardform.LP. It is described by spec.md §4.6: equality constraints
// are expanded into a <= / >= pair, >= constraints are stored as their
// negation, and free (unconstrained-sign) variables are split into
// x_i+ - x_i'' at Build() time.
//
// The field the original source calls "non_negative_indices" is
// semantically the list of *free* variable indices — variables are
// non-negative by default, and only the indices named here are split.
// This package uses the honest name, AddFreeVariableIndices.
package builder

import (
	"gonum.org/v1/gonum/mat"

	"github.com/askiada/simplex/internal/validate"
	"github.com/askiada/simplex/standardform"
)

// Builder accumulates an objective and constraints, validating shape and
// ordering as each is added, and compiles them into a standardform.LP on
// Build.
type Builder struct {
	c            []float64
	hasObjective bool
	rows         [][]float64
	rhs          []float64
	free         []int
	dim          int
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{dim: -1}
}

// checkDimension enforces that every vector added to the builder (the
// objective and every constraint row) has the same length, and that any
// already-registered free-variable indices still fit within it.
func (b *Builder) checkDimension(n int) error {
	if b.free != nil && !validate.InBounds(b.free, n) {
		return ErrFreeIndicesOutRange
	}
	if b.dim == -1 {
		b.dim = n
		return nil
	}
	if b.dim != n {
		return ErrDimensionMismatch
	}
	return nil
}

func (b *Builder) checkRow(v []float64) error {
	if err := b.checkDimension(len(v)); err != nil {
		return err
	}
	if validate.AllZero(v) {
		return ErrAllZeroRow
	}
	return nil
}

// AddFreeVariableIndices declares the sorted, unique, in-range indices
// of variables allowed to take any sign (by default every variable is
// constrained to be >= 0). May only be called once.
func (b *Builder) AddFreeVariableIndices(idx []int) (*Builder, error) {
	if len(idx) == 0 {
		return nil, ErrFreeIndicesEmpty
	}
	if !validate.IsSortedUnique(idx) {
		return nil, ErrFreeIndicesDisorder
	}
	if idx[0] < 0 {
		return nil, ErrFreeIndicesOutRange
	}
	if b.dim != -1 && !validate.InBounds(idx, b.dim) {
		return nil, ErrFreeIndicesOutRange
	}
	if b.free != nil {
		return nil, ErrFreeIndicesDup
	}
	b.free = append([]int(nil), idx...)
	return b, nil
}

// AddMinObjective adds "minimize c·x", stored internally as "maximize
// -c·x".
func (b *Builder) AddMinObjective(c []float64) (*Builder, error) {
	neg, err := b.addObjective(c)
	if err != nil {
		return nil, err
	}
	for i := range neg {
		neg[i] = -neg[i]
	}
	b.c = neg
	return b, nil
}

// AddMaxObjective adds "maximize c·x".
func (b *Builder) AddMaxObjective(c []float64) (*Builder, error) {
	cc, err := b.addObjective(c)
	if err != nil {
		return nil, err
	}
	b.c = cc
	return b, nil
}

func (b *Builder) addObjective(c []float64) ([]float64, error) {
	if b.hasObjective {
		return nil, ErrObjectiveDuplicate
	}
	if err := b.checkRow(c); err != nil {
		return nil, err
	}
	b.hasObjective = true
	return append([]float64(nil), c...), nil
}

// AddEqualityConstraint adds a·x = rhs, expanded into the pair
// (a·x <= rhs, -a·x <= -rhs).
func (b *Builder) AddEqualityConstraint(a []float64, rhs float64) (*Builder, error) {
	if err := b.checkRow(a); err != nil {
		return nil, err
	}
	neg := negate(a)
	b.rows = append(b.rows, append([]float64(nil), a...), neg)
	b.rhs = append(b.rhs, rhs, -rhs)
	return b, nil
}

// AddLessThanOrEqualConstraint adds a·x <= rhs.
func (b *Builder) AddLessThanOrEqualConstraint(a []float64, rhs float64) (*Builder, error) {
	if err := b.checkRow(a); err != nil {
		return nil, err
	}
	b.rows = append(b.rows, append([]float64(nil), a...))
	b.rhs = append(b.rhs, rhs)
	return b, nil
}

// AddGreaterThanOrEqualConstraint adds a·x >= rhs, stored as its
// negation -a·x <= -rhs.
func (b *Builder) AddGreaterThanOrEqualConstraint(a []float64, rhs float64) (*Builder, error) {
	if err := b.checkRow(a); err != nil {
		return nil, err
	}
	b.rows = append(b.rows, negate(a))
	b.rhs = append(b.rhs, -rhs)
	return b, nil
}

// Build validates that an objective and at least one constraint were
// added, splits any declared free variables, and compiles the result
// into a standardform.LP.
func (b *Builder) Build() (*standardform.LP, error) {
	if !b.hasObjective {
		return nil, ErrObjectiveMissing
	}
	if len(b.rows) == 0 {
		return nil, ErrConstraintsMissing
	}

	rows, c, free := b.expandFreeVariables()

	m, n := len(rows), len(c)
	a := mat.NewDense(m, n, nil)
	for i, row := range rows {
		for j, v := range row {
			a.Set(i, j, v)
		}
	}

	return standardform.New(c, a, b.rhs, free)
}

// expandFreeVariables duplicates, for every declared free-variable
// index i, the column i of every row and of c, placing the duplicate
// immediately after the original (the duplicate represents -x_i'' in
// the split x_i = x_i+ - x_i''). It returns the expanded rows and
// objective plus the original (pre-expansion) free-variable indices,
// which standardform.LP.Free records unchanged: Free[k] is the index
// the caller originally declared free, not its post-expansion column.
// In the expanded columns themselves, the kth declared free variable's
// x_i+ half has shifted to column Free[k]+k (one earlier split's
// insertion per smaller-index free variable already processed), and
// its x_i'' half sits immediately after, at Free[k]+k+1.
func (b *Builder) expandFreeVariables() ([][]float64, []float64, []int) {
	if b.free == nil {
		return b.rows, b.c, nil
	}

	c := append([]float64(nil), b.c...)
	rows := make([][]float64, len(b.rows))
	for i, r := range b.rows {
		rows[i] = append([]float64(nil), r...)
	}

	free := make([]int, 0, len(b.free))
	offset := 0
	for _, orig := range b.free {
		pos := orig + offset
		free = append(free, orig)
		c = duplicateAfter(c, pos)
		for i := range rows {
			rows[i] = duplicateAfter(rows[i], pos)
		}
		offset++
	}

	return rows, c, free
}

// duplicateAfter returns a copy of v with v[pos] duplicated immediately
// after position pos.
func duplicateAfter(v []float64, pos int) []float64 {
	out := make([]float64, len(v)+1)
	copy(out, v[:pos+1])
	out[pos+1] = v[pos]
	copy(out[pos+2:], v[pos+1:])
	return out
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

package slackform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFindLeavingPicksMinRatioWithBlandTieBreak(t *testing.T) {
	lp := &LP{
		n: 1,
		m: 3,
		N: []int{0},
		B: []int{1, 2, 3},
		A: mat.NewDense(3, 1, []float64{-1, -1, -2}),
		b: []float64{4, 4, 10},
		c: []float64{1},
	}

	leaving, err := lp.FindLeaving(0)
	require.NoError(t, err)
	assert.False(t, leaving.Unbounded)
	// Rows 0 and 1 tie at delta=4; Bland's rule picks the smallest row index.
	assert.Equal(t, 0, leaving.Row)
	assert.InDelta(t, 4, leaving.Delta, 1e-9)
}

func TestFindLeavingUnboundedIffNoCandidateRow(t *testing.T) {
	lp := &LP{
		n: 1,
		m: 2,
		N: []int{0},
		B: []int{1, 2},
		A: mat.NewDense(2, 1, []float64{1, 2}), // both >= 0, never a candidate
		b: []float64{4, 10},
		c: []float64{1},
	}

	leaving, err := lp.FindLeaving(0)
	require.NoError(t, err)
	assert.True(t, leaving.Unbounded)
}

func TestFindLeavingOutOfRange(t *testing.T) {
	lp := &LP{
		n: 1,
		m: 1,
		N: []int{0},
		B: []int{1},
		A: mat.NewDense(1, 1, []float64{-1}),
		b: []float64{1},
		c: []float64{1},
	}

	_, err := lp.FindLeaving(5)
	require.Error(t, err)
}

func TestFindEnteringAndLeavingPicksSmallestNonBasicIndex(t *testing.T) {
	// Two improving columns (c>0); Bland's rule must pick the one whose
	// non-basic variable index N[col] is smallest, not the largest reduced cost.
	lp := &LP{
		n: 2,
		m: 1,
		N: []int{5, 2},
		B: []int{9},
		A: mat.NewDense(1, 2, []float64{-1, -1}),
		b: []float64{10},
		c: []float64{100, 1},
	}

	sel, err := lp.FindEnteringAndLeaving()
	require.NoError(t, err)
	require.Equal(t, Switch, sel.Kind)
	assert.Equal(t, 1, sel.Col) // N[1] == 2 < N[0] == 5
}

func TestFindEnteringAndLeavingFinishedWhenNoImprovingColumn(t *testing.T) {
	lp := &LP{
		n: 1,
		m: 1,
		N: []int{0},
		B: []int{1},
		A: mat.NewDense(1, 1, []float64{-1}),
		b: []float64{1},
		c: []float64{-1},
	}

	sel, err := lp.FindEnteringAndLeaving()
	require.NoError(t, err)
	assert.Equal(t, Finished, sel.Kind)
}

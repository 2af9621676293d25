// Package simplex orchestrates the two-phase simplex method: construct a
// standard-form LP (directly or via package builder), transform it into
// slack form (package standardform), and call Solve to initialize and
// iterate it to completion (package slackform).
package simplex

import (
	"github.com/askiada/simplex/slackform"
)

// Option configures a Solve call.
type Option func(*slackform.LP)

// WithMaxIterations bounds the number of pivots each simplex loop run by
// Solve may perform before giving up with ErrIterationLimitExceeded. The
// bound applies separately to the auxiliary-LP loop inside Initialize and
// to the main FindOptimal loop; the fixed pivots Initialize makes outside
// those loops are not counted. The zero value (the
// default, if this option is never supplied) means unlimited — Bland's
// rule already guarantees termination, so this is only a defensive cap
// for pathological or misconstructed inputs.
func WithMaxIterations(n int) Option {
	return func(lp *slackform.LP) {
		lp.MaxIterations = n
	}
}

// Solve runs Initialize (the two-phase auxiliary-LP construction, only
// engaged when the trivial basic solution is infeasible) followed by
// FindOptimal on lp, mapping an infeasible initialization into
// slackform.Result{Kind: Infeasible}.
func Solve(lp *slackform.LP, opts ...Option) (slackform.Result, error) {
	for _, opt := range opts {
		opt(lp)
	}

	outcome, err := lp.Initialize()
	if err != nil {
		return slackform.Result{}, err
	}
	if outcome == slackform.InitInfeasible {
		return slackform.Result{Kind: slackform.Infeasible}, nil
	}

	return lp.FindOptimal()
}

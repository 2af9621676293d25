package slackform

import "github.com/pkg/errors"

// Sentinel errors returned by this package. Wrap with errors.Wrapf at the
// point of failure so callers can still recover the sentinel via
// errors.Is / errors.Cause.
var (
	// ErrShapeMismatch is returned by New when A, b or c is empty, or
	// their dimensions disagree.
	ErrShapeMismatch = errors.New("slackform: shape mismatch")

	// ErrOutOfRange is returned by FindLeaving when asked about a
	// column index >= n.
	ErrOutOfRange = errors.New("slackform: column index out of range")

	// ErrInternalInconsistency is returned when the degeneracy-pivot
	// phase of Initialize finds an all-zero row, or selection logic
	// reaches a state the algorithm guarantees cannot occur.
	ErrInternalInconsistency = errors.New("slackform: internal inconsistency")

	// ErrIterationLimitExceeded is returned by FindOptimal when a
	// caller-supplied MaxIterations bound is exceeded. Bland's rule
	// guarantees eventual termination, so this only fires when a bound
	// was explicitly set (spec.md design note: iteration bounds are a
	// defensive, caller-imposed addition, not part of the core contract).
	ErrIterationLimitExceeded = errors.New("slackform: iteration limit exceeded")
)

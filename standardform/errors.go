package standardform

import "github.com/pkg/errors"

// Sentinel errors returned by this package. Wrap with errors.Wrap /
// errors.Wrapf at the point of failure so callers can still recover the
// sentinel via errors.Is / errors.Cause.
var (
	// ErrShapeMismatch is returned by New when c, a or b is empty, or
	// their dimensions disagree.
	ErrShapeMismatch = errors.New("standardform: shape mismatch")

	// ErrOutOfRange is returned by New when free contains indices that
	// are unsorted, duplicated, or fall outside [0, n).
	ErrOutOfRange = errors.New("standardform: free-variable index out of range")
)

package builder

import "github.com/pkg/errors"

// Sentinel errors returned by Builder. They are returned as-is, without
// added context, so callers can compare them with errors.Is.
var (
	ErrObjectiveMissing    = errors.New("builder: objective function was never added")
	ErrObjectiveDuplicate  = errors.New("builder: objective function already added")
	ErrConstraintsMissing  = errors.New("builder: no constraints were added")
	ErrAllZeroRow          = errors.New("builder: all-zero objective or constraint row")
	ErrDimensionMismatch   = errors.New("builder: dimension mismatch with previously added vector")
	ErrFreeIndicesEmpty    = errors.New("builder: free-variable index list must not be empty")
	ErrFreeIndicesDisorder = errors.New("builder: free-variable indices must be sorted and unique")
	ErrFreeIndicesOutRange = errors.New("builder: free-variable indices out of range")
	ErrFreeIndicesDup      = errors.New("builder: free-variable indices already set")
)

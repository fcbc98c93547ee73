package ensemble

import "github.com/pkg/errors"

// Sentinel errors for the ensemble core.
//
// Every validation failure wraps one of these, so callers can match with
// errors.Is regardless of the context added at the detection site.
var (
	// ErrShapeMismatch reports inconsistent dimensions: an empty
	// prediction set, members with different shapes, or predictions
	// whose row count differs from the ground truth.
	ErrShapeMismatch = errors.New("ensemble: shape mismatch")

	// ErrInvalidWeights reports a malformed weight vector: negative or
	// non-finite entries, or a sum that is not 1 within tolerance.
	ErrInvalidWeights = errors.New("ensemble: invalid weights")
)

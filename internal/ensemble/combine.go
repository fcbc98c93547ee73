package ensemble

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fuse-ml/fuse/internal/simplex"
)

// WeightTolerance is how far a weight vector's sum may deviate from 1
// before it is rejected as invalid.
const WeightTolerance = 1e-6

// ValidateWeights checks that weights form a point on the probability
// simplex: non-negative, finite, and summing to 1 within WeightTolerance.
func ValidateWeights(weights []float64) error {
	if len(weights) == 0 {
		return errors.Wrap(ErrInvalidWeights, "empty weight vector")
	}
	sum := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.Wrapf(ErrInvalidWeights, "weight %d is %v", i, w)
		}
		if w < 0 {
			return errors.Wrapf(ErrInvalidWeights, "weight %d is negative: %v", i, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > WeightTolerance {
		return errors.Wrapf(ErrInvalidWeights, "weights sum to %v, want 1", sum)
	}
	return nil
}

// Combine computes the convex combination of the member predictions:
// out[s][d] = sum_i weights[i] * preds[i][s][d].
//
// The result is a new matrix with the members' common shape; no input is
// modified. Weight and shape violations fail with ErrInvalidWeights and
// ErrShapeMismatch respectively.
func Combine(preds PredictionSet, weights []float64) (*mat.Dense, error) {
	rows, cols, err := preds.Validate()
	if err != nil {
		return nil, err
	}
	if len(weights) != len(preds) {
		return nil, errors.Wrapf(ErrInvalidWeights,
			"%d weights for %d members", len(weights), len(preds))
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, cols, nil)
	scaled := mat.NewDense(rows, cols, nil)
	for i, p := range preds {
		scaled.Scale(weights[i], p)
		out.Add(out, scaled)
	}
	return out, nil
}

// Uniform returns the equal-weighting vector [1/n, ..., 1/n], the
// simple-averaging baseline.
func Uniform(n int) []float64 {
	return simplex.Uniform(n)
}

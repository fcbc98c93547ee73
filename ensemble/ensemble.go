// Copyright 2025 Fuse ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ensemble provides the public API for combining predictions from
// independently trained models.
//
// The package defines the core value types and the combination operation:
//   - PredictionSet: one prediction matrix per ensemble member
//   - Predictor: the opaque contract with an already-fitted model
//   - Combine: the convex combination used as the ensemble's prediction
//
// Example:
//
//	preds, err := ensemble.Collect(models, validationBatch)
//	if err != nil {
//	    return err
//	}
//	avg, err := ensemble.Combine(preds, ensemble.Uniform(len(preds)))
package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fuse-ml/fuse/internal/ensemble"
)

// PredictionSet is an ordered collection of per-member prediction
// matrices sharing one shape: samples by output dimensions.
type PredictionSet = ensemble.PredictionSet

// Predictor is an opaque, already-fitted model exposing only prediction.
type Predictor = ensemble.Predictor

// PredictorFunc adapts a plain function to the Predictor interface.
type PredictorFunc = ensemble.PredictorFunc

// Sentinel errors; match with errors.Is.
var (
	// ErrShapeMismatch reports inconsistent dimensions among predictions,
	// weights, or ground truth.
	ErrShapeMismatch = ensemble.ErrShapeMismatch
	// ErrInvalidWeights reports a weight vector off the probability
	// simplex.
	ErrInvalidWeights = ensemble.ErrInvalidWeights
)

// WeightTolerance is the accepted deviation of a weight vector's sum
// from 1.
const WeightTolerance = ensemble.WeightTolerance

// Combine computes the element-wise weighted sum of the member
// predictions. The weights must lie on the probability simplex and match
// the member count; the result is a new matrix with the members' shape.
//
// Example:
//
//	combined, err := ensemble.Combine(preds, []float64{0.5, 0.3, 0.2})
func Combine(preds PredictionSet, weights []float64) (*mat.Dense, error) {
	return ensemble.Combine(preds, weights)
}

// Collect runs every model over the batch and returns the validated
// prediction set, the input to Combine and to weight search.
func Collect(models []Predictor, batch mat.Matrix) (PredictionSet, error) {
	return ensemble.Collect(models, batch)
}

// Uniform returns the equal-weighting vector [1/n, ..., 1/n], the
// simple-averaging baseline.
func Uniform(n int) []float64 {
	return ensemble.Uniform(n)
}

// ValidateWeights checks that weights form a point on the probability
// simplex within WeightTolerance.
func ValidateWeights(weights []float64) error {
	return ensemble.ValidateWeights(weights)
}

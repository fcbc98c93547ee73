// Copyright 2025 Fuse ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics provides the score functions used to evaluate ensemble
// weight candidates. All scores are pure and higher-is-better; any
// lower-is-better loss fits the contract negated, as NegLogLoss and
// NegMSE do.
//
// Example:
//
//	weights, best, err := search.Search(preds, truth, metrics.NegLogLoss, cfg)
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fuse-ml/fuse/internal/metrics"
)

// ScoreFunc maps combined predictions and aligned ground truth to a
// scalar score, higher is better.
type ScoreFunc = metrics.ScoreFunc

// Accuracy scores classification predictions by the fraction of correctly
// classified samples. The default choice when no calibrated probability
// quality is needed.
func Accuracy(pred, truth *mat.Dense) (float64, error) {
	return metrics.Accuracy(pred, truth)
}

// NegLogLoss scores classification predictions by negated mean cross
// entropy of the true-class probability.
func NegLogLoss(pred, truth *mat.Dense) (float64, error) {
	return metrics.NegLogLoss(pred, truth)
}

// NegMSE scores regression predictions by negated mean squared error.
func NegMSE(pred, truth *mat.Dense) (float64, error) {
	return metrics.NegMSE(pred, truth)
}

// AUC scores binary predictions by the area under the ROC curve.
func AUC(pred, truth *mat.Dense) (float64, error) {
	return metrics.AUC(pred, truth)
}

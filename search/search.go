// Copyright 2025 Fuse ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package search provides the public API for ensemble weight search:
// finding the convex combination of model predictions that maximizes a
// validation metric.
//
// Three strategies are available:
//   - StrategyRandom: seeded uniform sampling of the simplex
//   - StrategyGrid: exhaustive fixed-resolution lattice enumeration
//   - StrategyNelderMead: derivative-free local optimization with
//     projection back onto the simplex
//
// Example:
//
//	weights, best, err := search.Search(preds, truth, metrics.Accuracy, search.Config{
//	    Strategy:   search.StrategyRandom,
//	    Iterations: 1000,
//	    Seed:       7,
//	})
package search

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fuse-ml/fuse/internal/ensemble"
	"github.com/fuse-ml/fuse/internal/metrics"
	"github.com/fuse-ml/fuse/internal/search"
)

// Strategy selects how the weight space is explored.
type Strategy = search.Strategy

// Supported search strategies.
const (
	StrategyRandom     = search.StrategyRandom
	StrategyGrid       = search.StrategyGrid
	StrategyNelderMead = search.StrategyNelderMead
)

// Config controls a search run; zero fields take documented defaults.
type Config = search.Config

// ErrSearchSpaceTooLarge reports a grid search over more members than the
// configured bound.
var ErrSearchSpaceTooLarge = search.ErrSearchSpaceTooLarge

// Search finds the best-scoring weight vector for the predictions against
// the ground truth. Shape problems fail before any candidate is scored;
// the returned score is exactly the returned weights' score.
func Search(preds ensemble.PredictionSet, truth *mat.Dense, score metrics.ScoreFunc, cfg Config) ([]float64, float64, error) {
	return search.Search(preds, truth, score, cfg)
}

// Seeds runs one independent Search per seed concurrently and returns the
// best result. Deterministic for a fixed seed list.
//
// Example:
//
//	weights, best, err := search.Seeds(preds, truth, metrics.Accuracy,
//	    search.Config{Strategy: search.StrategyRandom, Iterations: 500},
//	    []int64{1, 2, 3, 4})
func Seeds(preds ensemble.PredictionSet, truth *mat.Dense, score metrics.ScoreFunc, cfg Config, seeds []int64) ([]float64, float64, error) {
	return search.Seeds(preds, truth, score, cfg, seeds)
}

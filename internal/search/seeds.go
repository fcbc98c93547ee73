package search

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fuse-ml/fuse/internal/ensemble"
	"github.com/fuse-ml/fuse/internal/metrics"
	"github.com/fuse-ml/fuse/internal/parallel"
)

// Seeds runs one full Search per seed concurrently and keeps the best
// result. Each run is independent and deterministic for its seed; ties
// resolve to the earliest seed so the overall call is deterministic too.
//
// Mostly useful with StrategyRandom, where different seeds explore
// different regions of the simplex.
func Seeds(preds ensemble.PredictionSet, truth *mat.Dense, score metrics.ScoreFunc, cfg Config, seeds []int64) ([]float64, float64, error) {
	if len(seeds) == 0 {
		return Search(preds, truth, score, cfg)
	}

	type outcome struct {
		weights []float64
		score   float64
		err     error
	}
	outcomes := make([]outcome, len(seeds))

	parallel.For(len(seeds), func(i int) {
		runCfg := cfg
		runCfg.Seed = seeds[i]
		w, s, err := Search(preds, truth, score, runCfg)
		outcomes[i] = outcome{weights: w, score: s, err: err}
	}, parallel.Wide())

	best := -1
	for i, o := range outcomes {
		if o.err != nil {
			return nil, 0, o.err
		}
		if best < 0 || o.score > outcomes[best].score {
			best = i
		}
	}
	return outcomes[best].weights, outcomes[best].score, nil
}

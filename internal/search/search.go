package search

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fuse-ml/fuse/internal/ensemble"
	"github.com/fuse-ml/fuse/internal/metrics"
)

// Search finds the weight vector on the probability simplex that
// maximizes score over the validation predictions and ground truth.
//
// All shape checking happens before the first candidate is scored: an
// empty set, inconsistent member shapes, or a prediction/truth row
// mismatch fail fast with ensemble.ErrShapeMismatch and no partial work.
//
// The returned weights always satisfy ensemble.Combine's preconditions,
// and the returned score is exactly the score of those weights as
// recorded when the winning candidate was evaluated.
//
// Example:
//
//	weights, best, err := search.Search(preds, truth, metrics.Accuracy, search.Config{
//	    Strategy:   search.StrategyNelderMead,
//	    Iterations: 500,
//	    Seed:       42,
//	})
func Search(preds ensemble.PredictionSet, truth *mat.Dense, score metrics.ScoreFunc, cfg Config) ([]float64, float64, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, 0, err
	}
	if _, _, err := preds.ValidateAgainst(truth); err != nil {
		return nil, 0, err
	}

	ev := &evaluator{preds: preds, truth: truth, score: score}

	// A single member admits exactly one valid weighting.
	if len(preds) == 1 {
		if _, err := ev.eval([]float64{1}); err != nil {
			return nil, 0, err
		}
		return ev.result()
	}

	var err error
	switch cfg.Strategy {
	case StrategyRandom:
		err = searchRandom(ev, len(preds), cfg)
	case StrategyGrid:
		err = searchGrid(ev, len(preds), cfg)
	case StrategyNelderMead:
		err = searchNelderMead(ev, len(preds), cfg)
	}
	if err != nil {
		return nil, 0, err
	}
	return ev.result()
}

// evaluator scores candidate weight vectors and tracks the best one seen.
// Storing the score at evaluation time keeps the final (weights, score)
// pair exact with no recomputation.
type evaluator struct {
	preds ensemble.PredictionSet
	truth *mat.Dense
	score metrics.ScoreFunc

	bestWeights []float64
	bestScore   float64
	evaluated   bool
}

func (e *evaluator) eval(w []float64) (float64, error) {
	combined, err := ensemble.Combine(e.preds, w)
	if err != nil {
		return 0, err
	}
	s, err := e.score(combined, e.truth)
	if err != nil {
		return 0, err
	}
	if !e.evaluated || s > e.bestScore {
		e.bestWeights = append([]float64(nil), w...)
		e.bestScore = s
		e.evaluated = true
	}
	return s, nil
}

func (e *evaluator) result() ([]float64, float64, error) {
	return e.bestWeights, e.bestScore, nil
}

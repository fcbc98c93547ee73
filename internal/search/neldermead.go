package search

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/fuse-ml/fuse/internal/simplex"
)

// searchNelderMead runs gonum's Nelder-Mead over the unconstrained weight
// space, projecting each candidate onto the simplex before scoring. The
// run stops at the evaluation budget or when the absolute score
// improvement drops below cfg.Tolerance.
//
// The plain average is scored before the optimizer starts, so the result
// never regresses below the uniform baseline, and the best projected
// candidate stands even if the optimizer terminates abnormally.
func searchNelderMead(ev *evaluator, members int, cfg Config) error {
	uniform := simplex.Uniform(members)
	if _, err := ev.eval(uniform); err != nil {
		return err
	}

	budget := cfg.Iterations - 1
	if budget <= 0 {
		return nil
	}

	var evalErr error
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if evalErr != nil {
				return math.Inf(1)
			}
			s, err := ev.eval(simplex.Project(x))
			if err != nil {
				evalErr = err
				return math.Inf(1)
			}
			return -s
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: budget,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.Tolerance,
			Iterations: 4 * members,
		},
	}

	// The optimizer's own outcome is irrelevant: the evaluator already
	// holds the best projected candidate and its exact score.
	_, _ = optimize.Minimize(problem, uniform, settings, &optimize.NelderMead{})
	return evalErr
}

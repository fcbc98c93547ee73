package search

import "github.com/pkg/errors"

// Strategy selects how the weight space is explored.
type Strategy string

// Supported search strategies.
const (
	// StrategyRandom samples the simplex uniformly and keeps the best
	// candidate seen.
	StrategyRandom Strategy = "random"
	// StrategyGrid enumerates a fixed-resolution simplex lattice
	// exhaustively.
	StrategyGrid Strategy = "grid"
	// StrategyNelderMead runs derivative-free simplex-reflection
	// optimization with projection back onto the weight simplex.
	StrategyNelderMead Strategy = "nelder_mead"
)

// ErrSearchSpaceTooLarge reports a grid search over more members than the
// configured bound; the lattice size grows combinatorially with member
// count.
var ErrSearchSpaceTooLarge = errors.New("search: grid space too large")

// Config controls a weight search run.
type Config struct {
	Strategy   Strategy // Exploration strategy (default: random).
	Iterations int      // Evaluation budget for random and nelder_mead (default: 250).
	Seed       int64    // RNG seed; every run is reproducible, 0 is a valid seed.
	Tolerance  float64  // Nelder-Mead absolute score convergence (default: 1e-6).

	GridStep       float64 // Lattice resolution for grid (default: 0.05).
	MaxGridMembers int     // Member bound for grid (default: 5).
}

// withDefaults fills unset fields, leaving the caller's Config untouched.
func (c Config) withDefaults() Config {
	if c.Strategy == "" {
		c.Strategy = StrategyRandom
	}
	if c.Iterations == 0 {
		c.Iterations = 250
	}
	if c.Tolerance == 0 {
		c.Tolerance = 1e-6
	}
	if c.GridStep == 0 {
		c.GridStep = 0.05
	}
	if c.MaxGridMembers == 0 {
		c.MaxGridMembers = 5
	}
	return c
}

// validate rejects configurations no strategy can honor.
func (c Config) validate() error {
	if c.Iterations < 0 {
		return errors.Errorf("search: negative iteration budget %d", c.Iterations)
	}
	if c.GridStep < 0 || c.GridStep > 1 {
		return errors.Errorf("search: grid step %v outside (0, 1]", c.GridStep)
	}
	if c.Tolerance < 0 {
		return errors.Errorf("search: negative tolerance %v", c.Tolerance)
	}
	switch c.Strategy {
	case StrategyRandom, StrategyGrid, StrategyNelderMead:
		return nil
	}
	return errors.Errorf("search: unknown strategy %q", c.Strategy)
}

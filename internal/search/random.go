package search

import (
	"math/rand"

	"github.com/fuse-ml/fuse/internal/simplex"
)

// searchRandom draws cfg.Iterations candidates uniformly from the simplex
// and keeps the best. Deterministic for a fixed cfg.Seed.
func searchRandom(ev *evaluator, members int, cfg Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // G404: seeded math/rand is intentional for reproducible search

	for i := 0; i < cfg.Iterations; i++ {
		if _, err := ev.eval(simplex.Sample(members, rng)); err != nil {
			return err
		}
	}
	return nil
}

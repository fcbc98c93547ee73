package search

import (
	"github.com/pkg/errors"

	"github.com/fuse-ml/fuse/internal/simplex"
)

// searchGrid scores every point of the simplex lattice at cfg.GridStep
// resolution. The lattice contains all one-hot vertices, so the result
// can never score below a single-member baseline.
func searchGrid(ev *evaluator, members int, cfg Config) error {
	if members > cfg.MaxGridMembers {
		return errors.Wrapf(ErrSearchSpaceTooLarge,
			"%d members exceeds bound %d (lattice would hold %d points)",
			members, cfg.MaxGridMembers,
			simplex.LatticeSize(members, simplex.Resolution(cfg.GridStep)))
	}

	k := simplex.Resolution(cfg.GridStep)
	var evalErr error
	simplex.Lattice(members, k, func(w []float64) bool {
		_, evalErr = ev.eval(w)
		return evalErr == nil
	})
	return evalErr
}

package ensemble

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// PredictionSet is an ordered collection of per-member prediction
// matrices. Every member has the same shape: one row per validation
// sample, one column per output dimension.
type PredictionSet []*mat.Dense

// Validate checks that the set is non-empty and that all members share
// one non-degenerate shape. It returns the common (rows, cols).
func (p PredictionSet) Validate() (rows, cols int, err error) {
	if len(p) == 0 {
		return 0, 0, errors.Wrap(ErrShapeMismatch, "empty prediction set")
	}

	rows, cols = p[0].Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, errors.Wrap(ErrShapeMismatch, "member 0 has no elements")
	}
	for i, m := range p[1:] {
		r, c := m.Dims()
		if r != rows || c != cols {
			return 0, 0, errors.Wrapf(ErrShapeMismatch,
				"member %d has shape %dx%d, member 0 has %dx%d",
				i+1, r, c, rows, cols)
		}
	}
	return rows, cols, nil
}

// ValidateAgainst checks the set itself and that its sample count matches
// the ground truth row count.
func (p PredictionSet) ValidateAgainst(truth *mat.Dense) (rows, cols int, err error) {
	rows, cols, err = p.Validate()
	if err != nil {
		return 0, 0, err
	}
	if truth == nil {
		return 0, 0, errors.Wrap(ErrShapeMismatch, "nil ground truth")
	}
	tr, _ := truth.Dims()
	if tr != rows {
		return 0, 0, errors.Wrapf(ErrShapeMismatch,
			"predictions have %d samples, ground truth has %d", rows, tr)
	}
	return rows, cols, nil
}

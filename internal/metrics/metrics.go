package metrics

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fuse-ml/fuse/internal/ensemble"
)

// ScoreFunc maps combined predictions and aligned ground truth to a
// scalar score, higher is better. Implementations are pure: no side
// effects, same inputs always produce the same score.
type ScoreFunc func(pred, truth *mat.Dense) (float64, error)

// Accuracy scores classification predictions by the fraction of samples
// whose predicted class matches the true class.
//
// The predicted class is the row argmax, or a 0.5 threshold on a
// single-column probability. Truth is either a label column or one-hot
// rows (argmax taken).
func Accuracy(pred, truth *mat.Dense) (float64, error) {
	rows, cols, err := dims(pred, truth)
	if err != nil {
		return 0, err
	}
	_, tc := truth.Dims()

	correct := 0
	for i := 0; i < rows; i++ {
		want, err := trueLabel(truth, i, tc, cols)
		if err != nil {
			return 0, err
		}
		if predictedClass(pred, i, cols) == want {
			correct++
		}
	}
	return float64(correct) / float64(rows), nil
}

// NegLogLoss scores classification predictions by negated mean cross
// entropy of the probability assigned to the true class. Probabilities
// are clamped at 1e-15 so a confident miss stays finite.
func NegLogLoss(pred, truth *mat.Dense) (float64, error) {
	rows, cols, err := dims(pred, truth)
	if err != nil {
		return 0, err
	}
	_, tc := truth.Dims()

	const eps = 1e-15
	total := 0.0
	for i := 0; i < rows; i++ {
		label, err := trueLabel(truth, i, tc, cols)
		if err != nil {
			return 0, err
		}

		var p float64
		if cols == 1 {
			// Single column is P(class 1).
			p = pred.At(i, 0)
			if label == 0 {
				p = 1 - p
			}
		} else {
			p = pred.At(i, label)
		}
		total += math.Log(math.Min(math.Max(p, eps), 1))
	}
	return total / float64(rows), nil
}

// NegMSE scores regression predictions by negated mean squared error.
// Truth must have the same shape as the predictions.
func NegMSE(pred, truth *mat.Dense) (float64, error) {
	rows, cols, err := dims(pred, truth)
	if err != nil {
		return 0, err
	}
	if _, tc := truth.Dims(); tc != cols {
		return 0, errors.Wrapf(ensemble.ErrShapeMismatch,
			"predictions have %d columns, targets have %d", cols, tc)
	}

	total := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := pred.At(i, j) - truth.At(i, j)
			total += d * d
		}
	}
	return -total / float64(rows*cols), nil
}

// dims validates the prediction/truth row alignment and returns the
// prediction dimensions.
func dims(pred, truth *mat.Dense) (rows, cols int, err error) {
	if pred == nil || truth == nil {
		return 0, 0, errors.Wrap(ensemble.ErrShapeMismatch, "nil matrix")
	}
	rows, cols = pred.Dims()
	if rows == 0 {
		return 0, 0, errors.Wrap(ensemble.ErrShapeMismatch, "no samples")
	}
	tr, _ := truth.Dims()
	if tr != rows {
		return 0, 0, errors.Wrapf(ensemble.ErrShapeMismatch,
			"predictions have %d samples, ground truth has %d", rows, tr)
	}
	return rows, cols, nil
}

// trueLabel extracts the class index for sample i from a label column or
// one-hot truth row.
func trueLabel(truth *mat.Dense, i, truthCols, classes int) (int, error) {
	if truthCols == 1 {
		label := int(truth.At(i, 0))
		if float64(label) != truth.At(i, 0) || label < 0 {
			return 0, errors.Errorf("metrics: sample %d has non-integer label %v", i, truth.At(i, 0))
		}
		if classes > 1 && label >= classes {
			return 0, errors.Errorf("metrics: sample %d label %d out of range for %d classes", i, label, classes)
		}
		if classes == 1 && label > 1 {
			return 0, errors.Errorf("metrics: sample %d label %d out of range for binary predictions", i, label)
		}
		return label, nil
	}
	return rowArgmax(truth, i, truthCols), nil
}

// predictedClass is the row argmax, or a threshold for a single
// probability column.
func predictedClass(pred *mat.Dense, i, cols int) int {
	if cols == 1 {
		if pred.At(i, 0) >= 0.5 {
			return 1
		}
		return 0
	}
	return rowArgmax(pred, i, cols)
}

func rowArgmax(m *mat.Dense, i, cols int) int {
	best := 0
	bestVal := m.At(i, 0)
	for j := 1; j < cols; j++ {
		if v := m.At(i, j); v > bestVal {
			best = j
			bestVal = v
		}
	}
	return best
}

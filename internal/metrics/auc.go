package metrics

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// AUC scores binary predictions by the area under the ROC curve.
//
// Truth must be a single 0/1 label column. The positive-class score is
// column 1 when the predictions carry two (or more) columns, otherwise
// column 0. A perfect ranking scores 1.0, a fully inverted one 0.0.
func AUC(pred, truth *mat.Dense) (float64, error) {
	rows, cols, err := dims(pred, truth)
	if err != nil {
		return 0, err
	}
	if _, tc := truth.Dims(); tc != 1 {
		return 0, errors.Errorf("metrics: AUC needs a single label column, got %d", tc)
	}

	scoreCol := 0
	if cols >= 2 {
		scoreCol = 1
	}

	scores := make([]float64, rows)
	classes := make([]bool, rows)
	positives := 0
	for i := 0; i < rows; i++ {
		scores[i] = pred.At(i, scoreCol)
		switch truth.At(i, 0) {
		case 0:
		case 1:
			classes[i] = true
			positives++
		default:
			return 0, errors.Errorf("metrics: AUC labels must be 0 or 1, sample %d is %v", i, truth.At(i, 0))
		}
	}
	if positives == 0 || positives == rows {
		return 0, errors.Errorf("metrics: AUC undefined with %d positives in %d samples", positives, rows)
	}

	// gonum's ROC wants scores ascending with labels carried along.
	stat.SortWeightedLabeled(scores, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	return integrate.Trapezoidal(fpr, tpr), nil
}

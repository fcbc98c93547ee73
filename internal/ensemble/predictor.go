package ensemble

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Predictor is the only contract this library has with the models being
// ensembled: an already-fitted, opaque prediction function. How the model
// was built, trained, or loaded is invisible here.
type Predictor interface {
	// Predict maps an input batch to a prediction matrix with one row
	// per input sample.
	Predict(batch mat.Matrix) (*mat.Dense, error)
}

// PredictorFunc adapts a plain function to the Predictor interface.
type PredictorFunc func(batch mat.Matrix) (*mat.Dense, error)

// Predict calls f.
func (f PredictorFunc) Predict(batch mat.Matrix) (*mat.Dense, error) {
	return f(batch)
}

// Collect runs each model over the batch once, in order, and returns the
// validated prediction set. A member failure is reported with its index
// and aborts the collection.
func Collect(models []Predictor, batch mat.Matrix) (PredictionSet, error) {
	if len(models) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "no models to collect from")
	}

	preds := make(PredictionSet, 0, len(models))
	for i, m := range models {
		p, err := m.Predict(batch)
		if err != nil {
			return nil, errors.Wrapf(err, "model %d", i)
		}
		preds = append(preds, p)
	}

	if _, _, err := preds.Validate(); err != nil {
		return nil, err
	}
	return preds, nil
}

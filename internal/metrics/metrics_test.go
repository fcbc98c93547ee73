package metrics

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fuse-ml/fuse/internal/ensemble"
)

func scoreClose(t *testing.T, got, want, eps float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func TestAccuracy_LabelColumn(t *testing.T) {
	pred := mat.NewDense(4, 3, []float64{
		0.7, 0.2, 0.1, // class 0, correct
		0.1, 0.8, 0.1, // class 1, correct
		0.3, 0.3, 0.4, // class 2, wrong (truth 1)
		0.2, 0.2, 0.6, // class 2, correct
	})
	truth := mat.NewDense(4, 1, []float64{0, 1, 1, 2})

	got, err := Accuracy(pred, truth)
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	scoreClose(t, got, 0.75, 1e-12, "accuracy")
}

func TestAccuracy_OneHotTruth(t *testing.T) {
	pred := mat.NewDense(2, 2, []float64{
		0.9, 0.1,
		0.4, 0.6,
	})
	truth := mat.NewDense(2, 2, []float64{
		1, 0,
		1, 0, // wrong
	})

	got, err := Accuracy(pred, truth)
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	scoreClose(t, got, 0.5, 1e-12, "one-hot accuracy")
}

func TestAccuracy_SingleProbabilityColumn(t *testing.T) {
	pred := mat.NewDense(3, 1, []float64{0.9, 0.2, 0.6})
	truth := mat.NewDense(3, 1, []float64{1, 0, 0})

	got, err := Accuracy(pred, truth)
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	scoreClose(t, got, 2.0/3, 1e-12, "binary accuracy")
}

func TestAccuracy_Errors(t *testing.T) {
	tests := []struct {
		name  string
		pred  *mat.Dense
		truth *mat.Dense
	}{
		{
			name:  "row mismatch",
			pred:  mat.NewDense(3, 2, nil),
			truth: mat.NewDense(2, 1, nil),
		},
		{
			name:  "label out of range",
			pred:  mat.NewDense(1, 2, []float64{0.5, 0.5}),
			truth: mat.NewDense(1, 1, []float64{7}),
		},
		{
			name:  "fractional label",
			pred:  mat.NewDense(1, 2, []float64{0.5, 0.5}),
			truth: mat.NewDense(1, 1, []float64{0.5}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Accuracy(tt.pred, tt.truth); err == nil {
				t.Error("Accuracy succeeded, want error")
			}
		})
	}
}

func TestAccuracy_RowMismatchIsShapeMismatch(t *testing.T) {
	_, err := Accuracy(mat.NewDense(3, 2, nil), mat.NewDense(2, 1, nil))
	if !errors.Is(err, ensemble.ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestNegLogLoss(t *testing.T) {
	pred := mat.NewDense(2, 2, []float64{
		0.5, 0.5,
		0.25, 0.75,
	})
	truth := mat.NewDense(2, 1, []float64{0, 1})

	got, err := NegLogLoss(pred, truth)
	if err != nil {
		t.Fatalf("NegLogLoss failed: %v", err)
	}
	want := (math.Log(0.5) + math.Log(0.75)) / 2
	scoreClose(t, got, want, 1e-12, "neg log loss")
}

func TestNegLogLoss_ClampsConfidentMiss(t *testing.T) {
	pred := mat.NewDense(1, 2, []float64{1, 0})
	truth := mat.NewDense(1, 1, []float64{1})

	got, err := NegLogLoss(pred, truth)
	if err != nil {
		t.Fatalf("NegLogLoss failed: %v", err)
	}
	if math.IsInf(got, -1) || math.IsNaN(got) {
		t.Errorf("confident miss produced %v, want finite", got)
	}
}

func TestNegLogLoss_BinaryColumn(t *testing.T) {
	pred := mat.NewDense(2, 1, []float64{0.8, 0.8})
	truth := mat.NewDense(2, 1, []float64{1, 0})

	got, err := NegLogLoss(pred, truth)
	if err != nil {
		t.Fatalf("NegLogLoss failed: %v", err)
	}
	want := (math.Log(0.8) + math.Log(0.2)) / 2
	scoreClose(t, got, want, 1e-12, "binary neg log loss")
}

func TestNegMSE(t *testing.T) {
	pred := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	truth := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 2,
	})

	got, err := NegMSE(pred, truth)
	if err != nil {
		t.Fatalf("NegMSE failed: %v", err)
	}
	scoreClose(t, got, -1, 1e-12, "neg MSE") // single error of 2, squared, over 4 cells
}

func TestNegMSE_ColumnMismatch(t *testing.T) {
	_, err := NegMSE(mat.NewDense(2, 2, nil), mat.NewDense(2, 1, nil))
	if !errors.Is(err, ensemble.ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestAUC(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		labels []float64
		want   float64
	}{
		{
			name:   "perfect ranking",
			scores: []float64{0.1, 0.2, 0.8, 0.9},
			labels: []float64{0, 0, 1, 1},
			want:   1,
		},
		{
			name:   "inverted ranking",
			scores: []float64{0.9, 0.8, 0.2, 0.1},
			labels: []float64{0, 0, 1, 1},
			want:   0,
		},
		{
			name:   "uninformative ranking",
			scores: []float64{0.3, 0.7, 0.3, 0.7},
			labels: []float64{0, 0, 1, 1},
			want:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.scores)
			pred := mat.NewDense(n, 1, tt.scores)
			truth := mat.NewDense(n, 1, tt.labels)

			got, err := AUC(pred, truth)
			if err != nil {
				t.Fatalf("AUC failed: %v", err)
			}
			scoreClose(t, got, tt.want, 1e-12, "AUC")
		})
	}
}

func TestAUC_UsesPositiveClassColumn(t *testing.T) {
	// Two-column predictions: column 1 is the positive-class score.
	pred := mat.NewDense(4, 2, []float64{
		0.9, 0.1,
		0.8, 0.2,
		0.2, 0.8,
		0.1, 0.9,
	})
	truth := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	got, err := AUC(pred, truth)
	if err != nil {
		t.Fatalf("AUC failed: %v", err)
	}
	scoreClose(t, got, 1, 1e-12, "two-column AUC")
}

func TestAUC_Errors(t *testing.T) {
	tests := []struct {
		name  string
		pred  *mat.Dense
		truth *mat.Dense
	}{
		{
			name:  "single class",
			pred:  mat.NewDense(2, 1, []float64{0.1, 0.9}),
			truth: mat.NewDense(2, 1, []float64{1, 1}),
		},
		{
			name:  "non-binary label",
			pred:  mat.NewDense(2, 1, []float64{0.1, 0.9}),
			truth: mat.NewDense(2, 1, []float64{0, 2}),
		},
		{
			name:  "wide truth",
			pred:  mat.NewDense(2, 2, nil),
			truth: mat.NewDense(2, 2, nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AUC(tt.pred, tt.truth); err == nil {
				t.Error("AUC succeeded, want error")
			}
		})
	}
}

// Package regression frames polynomial regression as the degenerate network
// with no hidden layers: a single linear transform of the polynomial features
// of the input, trained by the same gradient-descent loop as the full model.
package regression

import (
	"fmt"

	"github.com/go-mlp/mlpnet/common"
	"github.com/go-mlp/mlpnet/layers"
	"github.com/go-mlp/mlpnet/training"
	"gonum.org/v1/gonum/mat"
)

// Features builds the (len(xs) x degree) design matrix with columns
// x, x^2, ..., x^degree. The constant term has no column: it is learned by
// the network bias.
func Features(xs []float64, degree int) (*mat.Dense, error) {
	if degree < 1 {
		return nil, fmt.Errorf("regression: degree must be at least 1, got %d", degree)
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("regression: no samples")
	}
	data := make([]float64, len(xs)*degree)
	for i, x := range xs {
		p := 1.0
		for d := 0; d < degree; d++ {
			p *= x
			data[i*degree+d] = p
		}
	}
	return mat.NewDense(len(xs), degree, data), nil
}

// Fit trains a two-entry network (degree -> 1) on the polynomial features of
// xs against ys and returns it with its loss trace. The fitted coefficient of
// x^k ends up in weight entry (k-1, 0); the constant term in the bias.
func Fit(xs, ys []float64, degree int, params common.TrainingParameters) (*layers.Network, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("regression: %d inputs but %d targets", len(xs), len(ys))
	}
	X, err := Features(xs, degree)
	if err != nil {
		return nil, nil, err
	}
	Y := mat.NewDense(len(ys), 1, append([]float64(nil), ys...))

	params.LayerSizes = []int{degree, 1}
	return training.TrainNew(X, Y, params)
}

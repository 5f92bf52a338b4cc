package layers

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FrobeniusSquared returns trace(w^T w), the sum of squared entries of w.
func FrobeniusSquared(w *mat.Dense) float64 {
	_, c := w.Dims()
	g := mat.NewDense(c, c, nil)
	g.Mul(w.T(), w)
	return mat.Trace(g)
}

// Objective is the training objective: mean-squared error scaled by
// 1/(2*nsamples) plus the weight regularization term
// (decay/2) * sum_i trace(Wi^T Wi). Biases are not regularized.
func (n *Network) Objective(pred, target *mat.Dense, decay float64) (float64, error) {
	pr, pc := pred.Dims()
	tr, tc := target.Dims()
	if pr != tr || pc != tc {
		return 0, fmt.Errorf("layers: prediction is %dx%d, target is %dx%d", pr, pc, tr, tc)
	}

	diff := mat.NewDense(pr, pc, nil)
	diff.Sub(pred, target)
	norm := mat.Norm(diff, 2)
	obj := norm * norm / (2 * float64(pr))

	if decay != 0 {
		reg := 0.0
		for _, w := range n.weights {
			reg += FrobeniusSquared(w)
		}
		obj += decay / 2 * reg
	}
	return obj, nil
}

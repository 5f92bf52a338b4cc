package layers

import (
	"fmt"

	"github.com/go-mlp/mlpnet/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Gradients holds one weight gradient per layer transition, same shape as the
// corresponding weight matrix, and the column-summed error signal for each
// bias. Both are raw sums over the batch; Step divides by the sample count.
type Gradients struct {
	DW []*mat.Dense // sizes[i] x sizes[i+1]
	DB []*mat.Dense // 1 x sizes[i+1]
}

// Backprop runs a recorded forward pass on the batch and walks the error
// signal backward through the stack:
//
//	err[last] = pred - target
//	err[k]    = (err[k+1] W[k+1]^T) .* reluD(cache[k])
//
// The gradient for the first weight matrix uses the original input batch;
// every later one uses the previous transition's cached activation. The
// recorded activations belong to this pass alone and are discarded with it.
func (n *Network) Backprop(batch, target *mat.Dense) (*Gradients, error) {
	br, _ := batch.Dims()
	tr, tc := target.Dims()
	if tr != br {
		return nil, fmt.Errorf("layers: target has %d rows, batch has %d", tr, br)
	}
	if tc != n.sizes[len(n.sizes)-1] {
		return nil, fmt.Errorf("layers: target has %d columns, network outputs %d", tc, n.sizes[len(n.sizes)-1])
	}

	pred, cache, err := n.forward(batch, true)
	if err != nil {
		return nil, err
	}

	last := len(n.weights) - 1
	zprimes := make([]*mat.Dense, len(n.weights))

	// error signal at the output boundary, for the 1/(2n)-scaled MSE with
	// an unactivated output layer
	errSig := mat.NewDense(br, tc, nil)
	errSig.Sub(pred, target)
	zprimes[last] = errSig

	for k := last - 1; k >= 0; k-- {
		rows, cols := cache[k].Dims()
		back := mat.NewDense(rows, cols, nil)
		back.Mul(zprimes[k+1], n.weights[k+1].T())

		dAct := mat.NewDense(rows, cols, nil)
		dAct.Apply(utils.ToApply(utils.ReluD), cache[k])
		back.MulElem(back, dAct)
		zprimes[k] = back
	}

	g := &Gradients{
		DW: make([]*mat.Dense, len(n.weights)),
		DB: make([]*mat.Dense, len(n.weights)),
	}
	for j := range n.weights {
		in := batch
		if j > 0 {
			in = cache[j-1]
		}
		r, c := n.weights[j].Dims()
		dW := mat.NewDense(r, c, nil)
		dW.Mul(in.T(), zprimes[j])
		g.DW[j] = dW
		g.DB[j] = columnSums(zprimes[j])
	}
	return g, nil
}

func columnSums(m *mat.Dense) *mat.Dense {
	_, c := m.Dims()
	sums := make([]float64, c)
	for j := 0; j < c; j++ {
		sums[j] = floats.Sum(mat.Col(nil, j, m))
	}
	return mat.NewDense(1, c, sums)
}

package layers

import (
	"github.com/go-mlp/mlpnet/utils"
	"gonum.org/v1/gonum/mat"
)

// Forward computes the network's predictions for a batch of shape
// (nsamples x sizes[0]) with the current weights and biases, returning a
// matrix of shape (nsamples x sizes[last]). The batch is not modified.
func (n *Network) Forward(batch *mat.Dense) (*mat.Dense, error) {
	pred, _, err := n.forward(batch, false)
	return pred, err
}

// forward runs the pass and, when record is set, keeps each transition's
// output: the activated value for hidden layers, the raw pre-activation for
// the output layer. The input batch itself is never recorded; Backprop
// receives it separately for the first weight gradient.
func (n *Network) forward(batch *mat.Dense, record bool) (*mat.Dense, []*mat.Dense, error) {
	if err := n.checkBatch(batch); err != nil {
		return nil, nil, err
	}
	nsamples, _ := batch.Dims()

	var cache []*mat.Dense
	if record {
		cache = make([]*mat.Dense, 0, len(n.weights))
	}

	out := batch
	for i := range n.weights {
		_, cols := n.weights[i].Dims()
		u := mat.NewDense(nsamples, cols, nil)
		u.Mul(out, n.weights[i])

		bias := n.biases[i]
		u.Apply(func(_, col int, v float64) float64 {
			return v + bias.At(0, col)
		}, u)

		if i < len(n.weights)-1 {
			u.Apply(utils.ToApply(utils.Relu), u)
		}
		if record {
			cache = append(cache, u)
		}
		out = u
	}
	return out, cache, nil
}

package layers

import (
	"fmt"
	"math/rand"

	"github.com/go-mlp/mlpnet/utils"
	"gonum.org/v1/gonum/mat"
)

// Network is a dense feedforward network described by its layer sizes: one
// weight matrix and one bias row vector per consecutive pair, with Relu on
// every hidden layer and no activation on the output layer.
//
// The layer sizes are fixed at construction; the weights and biases are
// owned by the network and mutated in place by Step only.
type Network struct {
	sizes   []int
	weights []*mat.Dense // sizes[i] x sizes[i+1]
	biases  []*mat.Dense // 1 x sizes[i+1], broadcast over the sample axis
}

// NewNetwork builds a network for the given layer sizes, drawing the initial
// weights from rng scaled by each layer's input dimensionality. Biases start
// at zero. At least two sizes are required (input and output dimensionality).
func NewNetwork(sizes []int, rng *rand.Rand) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("layers: need at least two layer sizes, got %d", len(sizes))
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("layers: layer sizes must be positive, got %v", sizes)
		}
	}

	n := &Network{
		sizes:   append([]int(nil), sizes...),
		weights: make([]*mat.Dense, len(sizes)-1),
		biases:  make([]*mat.Dense, len(sizes)-1),
	}
	for i := 0; i < len(sizes)-1; i++ {
		c := utils.WeightsInit(rng, sizes[i]*sizes[i+1], float64(sizes[i]))
		n.weights[i] = mat.NewDense(sizes[i], sizes[i+1], c)
		n.biases[i] = mat.NewDense(1, sizes[i+1], nil)
	}
	return n, nil
}

// Sizes returns a copy of the layer sizes.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// GetWeights returns the live weight matrices, one per layer transition.
func (n *Network) GetWeights() []*mat.Dense {
	return n.weights
}

// GetBiases returns the live bias row vectors, one per layer transition.
func (n *Network) GetBiases() []*mat.Dense {
	return n.biases
}

func (n *Network) checkBatch(batch *mat.Dense) error {
	_, c := batch.Dims()
	if c != n.sizes[0] {
		return fmt.Errorf("layers: input has %d features, network expects %d", c, n.sizes[0])
	}
	return nil
}

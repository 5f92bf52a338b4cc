package layers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStepKnownValues(t *testing.T) {
	net, err := NewNetwork([]int{1, 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	net.GetWeights()[0].Set(0, 0, 2)
	net.GetBiases()[0].Set(0, 0, 1)

	g := &Gradients{
		DW: []*mat.Dense{mat.NewDense(1, 1, []float64{8})},
		DB: []*mat.Dense{mat.NewDense(1, 1, []float64{4})},
	}

	// w <- 2 - 0.1*(8/4 + 0.5*2) = 1.7
	// b <- 1 - (0.1/4)*4 = 0.9
	net.Step(g, 0.1, 0.5, 4, false)
	require.InDelta(t, 1.7, net.GetWeights()[0].At(0, 0), 1e-12)
	require.InDelta(t, 0.9, net.GetBiases()[0].At(0, 0), 1e-12)
}

func TestStepSkipOutput(t *testing.T) {
	net, err := NewNetwork([]int{2, 3, 1}, rand.New(rand.NewSource(6)))
	require.NoError(t, err)

	X := mat.NewDense(4, 2, []float64{
		0.5, 0.2,
		-0.3, 0.8,
		0.1, -0.4,
		0.9, 0.6,
	})
	Y := mat.NewDense(4, 1, []float64{1, 0, -1, 2})

	var lastW, lastB, firstW mat.Dense
	lastW.CloneFrom(net.GetWeights()[1])
	lastB.CloneFrom(net.GetBiases()[1])
	firstW.CloneFrom(net.GetWeights()[0])

	g, err := net.Backprop(X, Y)
	require.NoError(t, err)
	net.Step(g, 0.1, 0.01, 4, true)

	require.True(t, mat.Equal(&lastW, net.GetWeights()[1]))
	require.True(t, mat.Equal(&lastB, net.GetBiases()[1]))
	require.False(t, mat.Equal(&firstW, net.GetWeights()[0]))
}

package layers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewNetworkShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	net, err := NewNetwork([]int{2, 3, 5, 2, 1}, rng)
	require.NoError(t, err)

	require.Equal(t, []int{2, 3, 5, 2, 1}, net.Sizes())
	require.Len(t, net.GetWeights(), 4)
	require.Len(t, net.GetBiases(), 4)

	sizes := net.Sizes()
	for i, w := range net.GetWeights() {
		r, c := w.Dims()
		require.Equal(t, sizes[i], r)
		require.Equal(t, sizes[i+1], c)

		br, bc := net.GetBiases()[i].Dims()
		require.Equal(t, 1, br)
		require.Equal(t, sizes[i+1], bc)
		require.True(t, mat.Equal(net.GetBiases()[i], mat.NewDense(1, sizes[i+1], nil)))
	}
}

func TestNewNetworkReproducible(t *testing.T) {
	a, err := NewNetwork([]int{3, 4, 2}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := NewNetwork([]int{3, 4, 2}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := range a.weights {
		require.True(t, mat.Equal(a.weights[i], b.weights[i]))
	}
}

func TestNewNetworkDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewNetwork([]int{4}, rng)
	require.Error(t, err)

	_, err = NewNetwork(nil, rng)
	require.Error(t, err)

	_, err = NewNetwork([]int{2, -1, 3}, rng)
	require.Error(t, err)

	_, err = NewNetwork([]int{2, 0}, rng)
	require.Error(t, err)
}

func TestSizesIsACopy(t *testing.T) {
	net, err := NewNetwork([]int{2, 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	s := net.Sizes()
	s[0] = 99
	require.Equal(t, []int{2, 1}, net.Sizes())
}

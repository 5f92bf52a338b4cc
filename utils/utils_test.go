package utils

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelu(t *testing.T) {
	require.Equal(t, 0.0, Relu(-2))
	require.Equal(t, 0.0, Relu(0))
	require.Equal(t, 1.5, Relu(1.5))
}

func TestReluD(t *testing.T) {
	require.Equal(t, 0.0, ReluD(-1))
	require.Equal(t, 0.0, ReluD(0))
	require.Equal(t, 1.0, ReluD(0.001))
}

func TestRandomRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := Random(rng, -2, 3)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 3.0)
	}
}

func TestWeightsInit(t *testing.T) {
	a := WeightsInit(rand.New(rand.NewSource(4)), 50, 16)
	require.Len(t, a, 50)
	for _, v := range a {
		require.LessOrEqual(t, math.Abs(v), 1/math.Sqrt(16))
	}

	b := WeightsInit(rand.New(rand.NewSource(4)), 50, 16)
	require.Equal(t, a, b)
}

func TestToApply(t *testing.T) {
	f := ToApply(func(v float64) float64 { return 2 * v })
	require.Equal(t, 6.0, f(0, 0, 3))
	require.Equal(t, -2.0, f(4, 7, -1))
}

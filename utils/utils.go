package utils

import (
	"math"
	"math/rand"
)

// Random generates a random floating point number between a and b
func Random(rng *rand.Rand, a, b float64) float64 {
	return (b-a)*rng.Float64() + a
}

// Relu is the rectifier function: max(0,x)
func Relu(x float64) float64 {
	return math.Max(0, x)
}

// ReluD is the derivative of the Relu function, evaluated on the activated
// output of a unit: 1 where the unit fired, 0 otherwise (including the
// breakpoint, where every non-firing unit sits exactly at 0).
func ReluD(x float64) float64 {
	if x > 0 {
		return 1.0
	}
	return 0.0
}

// ToApply turns f into a function that can be used with mat.Dense.Apply
func ToApply(f func(float64) float64) func(i, j int, v float64) float64 {
	return func(i, j int, v float64) float64 {
		return f(v)
	}
}

// WeightsInit returns length values drawn uniformly from rng and scaled down
// by the square root of the layer's input dimensionality.
func WeightsInit(rng *rand.Rand, length int, inputs float64) []float64 {
	a := make([]float64, length)
	for i := range a {
		a[i] = Random(rng, -1, 1) / math.Sqrt(inputs)
	}
	return a
}

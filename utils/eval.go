package utils

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// RelativeErrors returns |pred - target| / |target| per sample, summed over
// the output columns. Zero targets fall back to the absolute error.
func RelativeErrors(pred, target *mat.Dense) []float64 {
	r, c := target.Dims()
	errs := make([]float64, r)
	for i := 0; i < r; i++ {
		num := 0.
		den := 0.
		for j := 0; j < c; j++ {
			num += math.Abs(pred.At(i, j) - target.At(i, j))
			den += math.Abs(target.At(i, j))
		}
		if den == 0 {
			errs[i] = num
		} else {
			errs[i] = num / den
		}
	}
	return errs
}

// MeanRelativeError averages RelativeErrors over the sample axis.
func MeanRelativeError(pred, target *mat.Dense) float64 {
	errs := RelativeErrors(pred, target)
	sum := 0.
	for _, e := range errs {
		sum += e
	}
	return sum / float64(len(errs))
}

// TraceSummary condenses a loss trace into its basic statistics.
type TraceSummary struct {
	Mean float64
	Min  float64
	Max  float64
	Std  float64
}

// SummarizeTrace computes summary statistics over the given loss trace.
func SummarizeTrace(trace []float64) (TraceSummary, error) {
	var s TraceSummary
	var err error
	if s.Mean, err = stats.Mean(trace); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(trace); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(trace); err != nil {
		return s, err
	}
	if s.Std, err = stats.StandardDeviation(trace); err != nil {
		return s, err
	}
	return s, nil
}

func (s TraceSummary) String() string {
	return fmt.Sprintf("mean: %.6f, min: %.6f, max: %.6f, std: %.6f", s.Mean, s.Min, s.Max, s.Std)
}

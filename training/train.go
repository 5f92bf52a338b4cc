package training

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-mlp/mlpnet/common"
	"github.com/go-mlp/mlpnet/layers"
	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/gonum/mat"
)

// Train runs full-batch gradient descent on net for Epochs x StepsPerEpoch
// steps. The whole of X and Y is used at every step. The objective is logged
// every LogEvery steps and recorded once per epoch; the per-epoch trace is
// returned. Training aborts with an error as soon as the objective stops
// being finite.
func Train(net *layers.Network, X, Y *mat.Dense, params common.TrainingParameters) ([]float64, error) {
	if err := params.Check(); err != nil {
		return nil, err
	}
	logEvery := params.LogEvery
	if logEvery <= 0 {
		logEvery = common.LOG_EVERY
	}
	nsamples, _ := X.Dims()

	trace := make([]float64, 0, params.Epochs)
	step := 0
	for epoch := 1; epoch <= params.Epochs; epoch++ {
		for i := 0; i < params.StepsPerEpoch; i++ {
			step++
			g, err := net.Backprop(X, Y)
			if err != nil {
				return trace, err
			}
			net.Step(g, params.LearnRate, params.WeightDecay, nsamples, params.SkipOutputUpdate)

			if step == 1 || step%logEvery == 0 {
				obj, err := objective(net, X, Y, params.WeightDecay)
				if err != nil {
					return trace, err
				}
				log.Lvl2("step", step, "objective", obj)
			}
		}

		obj, err := objective(net, X, Y, params.WeightDecay)
		if err != nil {
			return trace, err
		}
		if math.IsNaN(obj) || math.IsInf(obj, 0) {
			return trace, fmt.Errorf("training: objective diverged to %v at epoch %d", obj, epoch)
		}
		trace = append(trace, obj)
		log.Lvl1("epoch", epoch, "objective", obj)
	}
	return trace, nil
}

// TrainNew builds a network from the parameters' layer sizes with a seeded
// generator and trains it on X, Y.
func TrainNew(X, Y *mat.Dense, params common.TrainingParameters) (*layers.Network, []float64, error) {
	net, err := layers.NewNetwork(params.LayerSizes, rand.New(rand.NewSource(params.Seed)))
	if err != nil {
		return nil, nil, err
	}
	trace, err := Train(net, X, Y, params)
	return net, trace, err
}

func objective(net *layers.Network, X, Y *mat.Dense, decay float64) (float64, error) {
	pred, err := net.Forward(X)
	if err != nil {
		return 0, err
	}
	return net.Objective(pred, Y, decay)
}

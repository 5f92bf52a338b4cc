package main

import (
	"os"

	"github.com/go-mlp/mlpnet/common"
	"github.com/go-mlp/mlpnet/training"
	"github.com/go-mlp/mlpnet/utils"
	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/gonum/mat"
)

// default run: the (2,3,5,2,1) network on six samples of y = x0 + x1^2
const defaultConfig = `
LayerSizes = [2, 3, 5, 2, 1]
LearnRate = 0.01
WeightDecay = 0.0
Epochs = 5
StepsPerEpoch = 1000
LogEvery = 500
Seed = 42
`

func main() {
	log.SetDebugVisible(2)

	var params common.TrainingParameters
	var err error
	if len(os.Args) > 1 {
		params, err = common.LoadParameters(os.Args[1])
	} else {
		params, err = common.ParseParameters(defaultConfig)
	}
	if err != nil {
		log.Fatal("parameters:", err)
	}

	X := mat.NewDense(6, 2, []float64{
		0.2, 0.4,
		0.5, 0.1,
		0.8, 0.9,
		1.0, 0.5,
		0.3, 0.7,
		0.6, 0.2,
	})
	Y := mat.NewDense(6, 1, nil)
	for i := 0; i < 6; i++ {
		x0, x1 := X.At(i, 0), X.At(i, 1)
		Y.Set(i, 0, x0+x1*x1)
	}

	net, trace, err := training.TrainNew(X, Y, params)
	if err != nil {
		log.Fatal("training:", err)
	}

	pred, err := net.Forward(X)
	if err != nil {
		log.Fatal("prediction:", err)
	}
	log.Lvl1("mean relative error:", utils.MeanRelativeError(pred, Y))

	summary, err := utils.SummarizeTrace(trace)
	if err != nil {
		log.Fatal("trace summary:", err)
	}
	log.Lvl1("objective trace:", summary)

	if err := utils.LossCurve(trace, "objective"); err != nil {
		log.Error("plotting the loss curve:", err)
	}
}

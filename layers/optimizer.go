package layers

import "gonum.org/v1/gonum/mat"

// Step applies one in-place gradient-descent update:
//
//	W <- W - learnRate * (DW/nsamples + decay*W)
//	b <- b - (learnRate/nsamples) * DB
//
// nsamples is the batch size the gradients were accumulated over. With
// skipOutput set, the output transition keeps its weights and bias untouched
// (see common.TrainingParameters.SkipOutputUpdate).
func (n *Network) Step(g *Gradients, learnRate, decay float64, nsamples int, skipOutput bool) {
	inv := 1 / float64(nsamples)
	for i := range n.weights {
		if skipOutput && i == len(n.weights)-1 {
			continue
		}
		r, c := n.weights[i].Dims()

		dW := mat.NewDense(r, c, nil)
		dW.Scale(inv, g.DW[i])
		if decay != 0 {
			reg := mat.NewDense(r, c, nil)
			reg.Scale(decay, n.weights[i])
			dW.Add(dW, reg)
		}
		dW.Scale(learnRate, dW)
		n.weights[i].Sub(n.weights[i], dW)

		db := mat.NewDense(1, c, nil)
		db.Scale(learnRate*inv, g.DB[i])
		n.biases[i].Sub(n.biases[i], db)
	}
}

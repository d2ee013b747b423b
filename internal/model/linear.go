package model

import "math"

func (a *Artifact) predictLogReg(x []float64) float64 {
	margin := a.Intercept
	for i, w := range a.Coefficients {
		margin += w * x[i]
	}
	return sigmoid(margin)
}

func sigmoid(margin float64) float64 {
	return 1.0 / (1.0 + math.Exp(-margin))
}

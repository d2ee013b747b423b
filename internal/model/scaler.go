package model

// Apply standardizes x without mutating it.
func (s *Scaler) Apply(x []float64) []float64 {
	scaled := make([]float64, len(x))
	for i, v := range x {
		scaled[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return scaled
}

// Predict computes the positive-class probability for the assembled
// feature vector x. The artifact's scaler, when present, is applied
// first. Predict is goroutine-safe: artifacts are immutable after load.
func (a *Artifact) Predict(x []float64) float64 {
	if a.Scaler != nil {
		x = a.Scaler.Apply(x)
	}
	switch a.Kind {
	case KindGBTree:
		return a.predictGBTree(x)
	case KindForest:
		return a.predictForest(x)
	default:
		return a.predictLogReg(x)
	}
}

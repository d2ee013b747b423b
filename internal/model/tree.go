package model

// Score walks the tree for x and returns the reached leaf's value.
func (t *Tree) Score(x []float64) float64 {
	node := t.Nodes[0]
	for node.Feature != LeafFeature {
		if x[node.Feature] < node.Threshold {
			node = t.Nodes[node.Left]
		} else {
			node = t.Nodes[node.Right]
		}
	}
	return node.Value
}

func (a *Artifact) predictGBTree(x []float64) float64 {
	margin := a.BaseScore
	for _, tree := range a.Trees {
		margin += tree.Score(x)
	}
	return sigmoid(margin)
}

func (a *Artifact) predictForest(x []float64) float64 {
	var sum float64
	for _, tree := range a.Trees {
		sum += tree.Score(x)
	}
	return clamp01(sum / float64(len(a.Trees)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

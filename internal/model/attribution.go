package model

import (
	"sort"

	"github.com/sirenlab/modserve/internal/feature"
)

// Contribution is one feature's additive contribution to a prediction.
// Tree contributions are in the model's margin space (log-odds for
// gbtree, probability for forest); logreg contributions are in log-odds.
type Contribution struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"value"`
}

// Attribute computes per-feature contributions for x, in canonical
// feature order. For tree ensembles the change in node value at every
// split is credited to the split feature, summed over all trees. For
// logistic regression the contribution is coefficient times the
// (scaled) input.
func (a *Artifact) Attribute(x []float64) []Contribution {
	if a.Scaler != nil {
		x = a.Scaler.Apply(x)
	}

	values := make([]float64, feature.Count)
	switch a.Kind {
	case KindGBTree, KindForest:
		for _, tree := range a.Trees {
			tree.attribute(x, values)
		}
		if a.Kind == KindForest {
			for i := range values {
				values[i] /= float64(len(a.Trees))
			}
		}
	default:
		for i, w := range a.Coefficients {
			values[i] = w * x[i]
		}
	}

	keys := feature.Keys()
	contributions := make([]Contribution, feature.Count)
	for i, key := range keys {
		contributions[i] = Contribution{Feature: key, Value: values[i]}
	}
	return contributions
}

func (t *Tree) attribute(x []float64, values []float64) {
	node := t.Nodes[0]
	for node.Feature != LeafFeature {
		var next Node
		if x[node.Feature] < node.Threshold {
			next = t.Nodes[node.Left]
		} else {
			next = t.Nodes[node.Right]
		}
		values[node.Feature] += next.Value - node.Value
		node = next
	}
}

// Rank returns contributions ordered by decreasing magnitude.
func Rank(contributions []Contribution) []Contribution {
	ranked := make([]Contribution, len(contributions))
	copy(ranked, contributions)
	sort.SliceStable(ranked, func(i, j int) bool {
		li, lj := ranked[i].Value, ranked[j].Value
		if li < 0 {
			li = -li
		}
		if lj < 0 {
			lj = -lj
		}
		return li > lj
	})
	return ranked
}

package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirenlab/modserve/internal/feature"
)

// Kind identifies the classifier family an artifact was exported from.
type Kind string

const (
	KindGBTree Kind = "gbtree"
	KindForest Kind = "forest"
	KindLogReg Kind = "logreg"
)

// LeafFeature marks a leaf node in the serialized tree layout.
const LeafFeature = -1

// Node is one node of a serialized decision tree. Internal nodes route
// on `x[Feature] < Threshold` (left on true). Value holds the leaf
// output for leaves and the training-set mean for internal nodes, which
// is what path attribution walks over.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a serialized decision tree, root at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Scaler holds per-feature standardization parameters.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Artifact is a pre-trained classifier loaded from disk.
//
// gbtree: probability = sigmoid(BaseScore + sum of tree leaf values)
// forest: probability = mean of tree leaf values (positive-class fraction)
// logreg: probability = sigmoid(Intercept + Coefficients · x)
type Artifact struct {
	Kind         Kind      `json:"kind"`
	FeatureNames []string  `json:"feature_names"`
	BaseScore    float64   `json:"base_score,omitempty"`
	Trees        []Tree    `json:"trees,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Intercept    float64   `json:"intercept,omitempty"`
	Scaler       *Scaler   `json:"scaler,omitempty"`
}

// LoadArtifact reads and validates a model artifact from path.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact %s: %w", path, err)
	}
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parsing model artifact %s: %w", path, err)
	}
	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &artifact, nil
}

// Validate checks the artifact is structurally sound and matches the
// canonical feature schema. A validated artifact never fails inference.
func (a *Artifact) Validate() error {
	keys := feature.Keys()
	if len(a.FeatureNames) != len(keys) {
		return fmt.Errorf("expected %d feature names, got %d", len(keys), len(a.FeatureNames))
	}
	for i, name := range a.FeatureNames {
		if name != keys[i] {
			return fmt.Errorf("feature name mismatch at column %d: got %q, want %q", i, name, keys[i])
		}
	}

	switch a.Kind {
	case KindGBTree, KindForest:
		if len(a.Trees) == 0 {
			return fmt.Errorf("%s artifact has no trees", a.Kind)
		}
		for i, tree := range a.Trees {
			if err := tree.validate(len(keys)); err != nil {
				return fmt.Errorf("tree %d: %w", i, err)
			}
		}
		if a.Kind == KindForest {
			for i, tree := range a.Trees {
				for j, node := range tree.Nodes {
					if node.Value < 0 || node.Value > 1 {
						return fmt.Errorf("tree %d node %d: forest leaf fraction %g outside [0,1]", i, j, node.Value)
					}
				}
			}
		}
	case KindLogReg:
		if len(a.Coefficients) != len(keys) {
			return fmt.Errorf("expected %d coefficients, got %d", len(keys), len(a.Coefficients))
		}
	default:
		return fmt.Errorf("unknown model kind %q", a.Kind)
	}

	if a.Scaler != nil {
		if len(a.Scaler.Mean) != len(keys) || len(a.Scaler.Scale) != len(keys) {
			return fmt.Errorf("scaler must carry %d mean and scale entries", len(keys))
		}
		for i, s := range a.Scaler.Scale {
			if s == 0 {
				return fmt.Errorf("scaler scale for column %d is zero", i)
			}
		}
	}
	return nil
}

func (t *Tree) validate(featureCount int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i, node := range t.Nodes {
		if node.Feature == LeafFeature {
			continue
		}
		if node.Feature < 0 || node.Feature >= featureCount {
			return fmt.Errorf("node %d: feature index %d out of range", i, node.Feature)
		}
		if node.Left <= i || node.Left >= len(t.Nodes) || node.Right <= i || node.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d: child indices (%d, %d) out of range", i, node.Left, node.Right)
		}
	}
	return nil
}

package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sirenlab/modserve/pkg/metric"
	"gopkg.in/yaml.v3"
)

// ErrVariantNotFound is returned by Registry.Get for unknown ids.
var ErrVariantNotFound = errors.New("variant not found")

// Thresholds are the fixed probability cut points for risk tiers.
// Low is absent for two-tier variants.
type Thresholds struct {
	Low  *float64 `yaml:"low" json:"low,omitempty"`
	High float64  `yaml:"high" json:"high"`
}

// VariantConfig is one entry of the variant manifest.
type VariantConfig struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Artifact    string     `yaml:"artifact" json:"-"`
	Thresholds  Thresholds `yaml:"thresholds" json:"thresholds"`
	Attribution bool       `yaml:"attribution" json:"attribution"`
}

type manifest struct {
	Variants []VariantConfig `yaml:"variants"`
}

// Variant is a loaded, ready-to-serve model variant.
type Variant struct {
	VariantConfig
	Model *Artifact
}

// Registry holds every variant loaded from the manifest. It is
// immutable after LoadRegistry and safe for concurrent lookups.
type Registry struct {
	variants map[string]*Variant
	order    []string
}

// LoadRegistry reads the variant manifest and loads every referenced
// artifact. Artifact paths are resolved relative to the manifest file.
func LoadRegistry(manifestPath string) (*Registry, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading variant manifest %s: %w", manifestPath, err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing variant manifest %s: %w", manifestPath, err)
	}
	if len(m.Variants) == 0 {
		return nil, fmt.Errorf("variant manifest %s lists no variants", manifestPath)
	}

	baseDir := filepath.Dir(manifestPath)
	registry := &Registry{variants: make(map[string]*Variant, len(m.Variants))}
	for _, conf := range m.Variants {
		if conf.ID == "" {
			return nil, fmt.Errorf("variant manifest %s: variant with empty id", manifestPath)
		}
		if _, exists := registry.variants[conf.ID]; exists {
			return nil, fmt.Errorf("variant manifest %s: duplicate variant id %q", manifestPath, conf.ID)
		}
		if err := conf.Thresholds.validate(); err != nil {
			return nil, fmt.Errorf("variant %s: %w", conf.ID, err)
		}

		startTime := time.Now()
		artifact, err := LoadArtifact(filepath.Join(baseDir, conf.Artifact))
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", conf.ID, err)
		}
		tags := metric.BuildTag(
			metric.NewTag(metric.TagVariant, conf.ID),
			metric.NewTag(metric.TagModelKind, string(artifact.Kind)),
		)
		metric.Incr(metric.ModelLoadCount, tags)
		metric.Timing(metric.ModelLoadLatency, time.Since(startTime), tags)
		log.Info().Msgf("Loaded model variant %s (%s, %d trees, scaler=%v)",
			conf.ID, artifact.Kind, len(artifact.Trees), artifact.Scaler != nil)

		registry.variants[conf.ID] = &Variant{VariantConfig: conf, Model: artifact}
		registry.order = append(registry.order, conf.ID)
	}
	return registry, nil
}

func (t Thresholds) validate() error {
	if t.High <= 0 || t.High >= 1 {
		return fmt.Errorf("high threshold %g outside (0,1)", t.High)
	}
	if t.Low != nil && (*t.Low <= 0 || *t.Low >= t.High) {
		return fmt.Errorf("low threshold %g must be in (0, %g)", *t.Low, t.High)
	}
	return nil
}

// Get returns the variant for id.
func (r *Registry) Get(id string) (*Variant, error) {
	variant, ok := r.variants[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVariantNotFound, id)
	}
	return variant, nil
}

// List returns every variant in manifest order.
func (r *Registry) List() []*Variant {
	out := make([]*Variant, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.variants[id])
	}
	return out
}

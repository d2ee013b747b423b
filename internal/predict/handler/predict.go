package handler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sirenlab/modserve/internal/configs"
	"github.com/sirenlab/modserve/internal/feature"
	"github.com/sirenlab/modserve/internal/model"
	"github.com/sirenlab/modserve/internal/risk"
	"github.com/sirenlab/modserve/pkg/api"
	"github.com/sirenlab/modserve/pkg/metric"
)

var (
	predictOnce sync.Once
	predictor   Predictor
)

// Predictor runs the form-to-prediction pipeline for a variant.
type Predictor interface {
	Predict(variantID string, request *PredictRequest) (*PredictResponse, error)
	Variants() []VariantSummary
	Variant(variantID string) (*model.Variant, error)
}

type PredictHandler struct {
	registry    *model.Registry
	loggingPerc int
}

// InitPredictHandler wires the predictor singleton to a loaded registry.
func InitPredictHandler(registry *model.Registry, config configs.Configs) Predictor {
	predictOnce.Do(func() {
		predictor = &PredictHandler{
			registry:    registry,
			loggingPerc: config.ResponseLoggingPerc,
		}
	})
	return predictor
}

// GetPredictHandler returns the predictor, which must be initialized first.
func GetPredictHandler() Predictor {
	if predictor == nil {
		log.Fatal().Msg("Predict handler not initialized")
	}
	return predictor
}

// Predict assembles the fixed-order feature vector, applies the
// variant's model and maps the probability onto its risk tiers.
// Attribution is computed only for variants configured for it.
func (h *PredictHandler) Predict(variantID string, request *PredictRequest) (*PredictResponse, error) {
	startTime := time.Now()

	variant, err := h.registry.Get(variantID)
	if err != nil {
		return nil, api.NewNotFoundError(err.Error())
	}

	vector, err := feature.Assemble(request.Features)
	if err != nil {
		return nil, api.NewBadRequestError(err.Error())
	}

	probability := variant.Model.Predict(vector)
	tier := risk.Classify(probability, variant.Thresholds.Low, variant.Thresholds.High)

	response := &PredictResponse{
		TrackingID:  request.TrackingID,
		VariantID:   variant.ID,
		Probability: probability,
		Tier:        tier,
	}
	if response.TrackingID == "" {
		response.TrackingID = uuid.NewString()
	}
	if variant.Attribution {
		attributionStart := time.Now()
		response.Contributions = model.Rank(variant.Model.Attribute(vector))
		metric.Timing(metric.AttributionLatency, time.Since(attributionStart), metric.BuildTag(
			metric.NewTag(metric.TagVariant, variant.ID),
		))
	}

	tags := metric.BuildTag(
		metric.NewTag(metric.TagVariant, variant.ID),
		metric.NewTag(metric.TagModelKind, string(variant.Model.Kind)),
		metric.NewTag(metric.TagRiskTier, tier.Name),
	)
	metric.Incr(metric.PredictCount, tags)
	metric.Gauge(metric.PredictProbability, probability, tags)
	metric.Timing(metric.PredictLatency, time.Since(startTime), tags)

	h.maybeLogResponse(response)
	return response, nil
}

// maybeLogResponse logs a sampled share of responses keyed by tracking id.
func (h *PredictHandler) maybeLogResponse(response *PredictResponse) {
	if h.loggingPerc <= 0 || rand.Intn(100)+1 > h.loggingPerc {
		return
	}
	log.Info().
		Str("trackingId", response.TrackingID).
		Str("variant", response.VariantID).
		Float64("probability", response.Probability).
		Str("tier", response.Tier.Name).
		Msg("prediction response")
}

// Variants returns summaries for every registered variant.
func (h *PredictHandler) Variants() []VariantSummary {
	variants := h.registry.List()
	summaries := make([]VariantSummary, 0, len(variants))
	for _, v := range variants {
		summaries = append(summaries, VariantSummary{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			ModelKind:   string(v.Model.Kind),
			Thresholds:  v.Thresholds,
			Attribution: v.Attribution,
		})
	}
	return summaries
}

// Variant returns the loaded variant for id.
func (h *PredictHandler) Variant(variantID string) (*model.Variant, error) {
	variant, err := h.registry.Get(variantID)
	if err != nil {
		return nil, api.NewNotFoundError(err.Error())
	}
	return variant, nil
}

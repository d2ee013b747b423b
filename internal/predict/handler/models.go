package handler

import (
	"github.com/sirenlab/modserve/internal/model"
	"github.com/sirenlab/modserve/internal/risk"
)

// PredictRequest is one prediction request body.
type PredictRequest struct {
	TrackingID string             `json:"tracking_id"`
	Features   map[string]float64 `json:"features" binding:"required"`
}

// PredictResponse is the result of one inference call.
type PredictResponse struct {
	TrackingID    string               `json:"tracking_id"`
	VariantID     string               `json:"variant_id"`
	Probability   float64              `json:"probability"`
	Tier          risk.Tier            `json:"tier"`
	Contributions []model.Contribution `json:"contributions,omitempty"`
}

// VariantSummary is the list view of a variant.
type VariantSummary struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ModelKind   string           `json:"model_kind"`
	Thresholds  model.Thresholds `json:"thresholds"`
	Attribution bool             `json:"attribution"`
}

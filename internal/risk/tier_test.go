package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 {
	return &f
}

func TestClassifyThreeTier(t *testing.T) {
	tests := []struct {
		name     string
		p        float64
		low      float64
		expected string
	}{
		{name: "well below low", p: 0.02, low: 0.1, expected: "low"},
		{name: "just below low", p: 0.099, low: 0.1, expected: "low"},
		{name: "exactly low is moderate", p: 0.1, low: 0.1, expected: "moderate"},
		{name: "mid band", p: 0.3, low: 0.1, expected: "moderate"},
		{name: "just below high", p: 0.499, low: 0.1, expected: "moderate"},
		{name: "exactly high is high", p: 0.5, low: 0.1, expected: "high"},
		{name: "above high", p: 0.93, low: 0.1, expected: "high"},
		{name: "alternate low cut", p: 0.15, low: 0.2, expected: "low"},
		{name: "alternate low cut moderate", p: 0.25, low: 0.2, expected: "moderate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := Classify(tt.p, ptr(tt.low), 0.5)
			assert.Equal(t, tt.expected, tier.Name)
		})
	}
}

func TestClassifyTwoTier(t *testing.T) {
	assert.Equal(t, "low", Classify(0.49, nil, 0.5).Name)
	assert.Equal(t, "high", Classify(0.5, nil, 0.5).Name)
}

func TestTierDisplay(t *testing.T) {
	low := Classify(0.01, ptr(0.1), 0.5)
	assert.Equal(t, "Low Risk of MODS", low.Label)
	assert.Equal(t, SeveritySuccess, low.Severity)

	moderate := Classify(0.3, ptr(0.1), 0.5)
	assert.Equal(t, "Moderate Risk of MODS", moderate.Label)
	assert.Equal(t, SeverityWarning, moderate.Severity)

	high := Classify(0.9, ptr(0.1), 0.5)
	assert.Equal(t, "High Risk of MODS", high.Label)
	assert.Equal(t, SeverityDanger, high.Severity)
	assert.NotEmpty(t, high.Advice)
}

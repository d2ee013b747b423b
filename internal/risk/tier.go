package risk

// Severity drives how the UI styles a tier banner.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Tier is one ordinal risk band.
type Tier struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
	Advice   string   `json:"advice"`
}

var (
	tierLow = Tier{
		Name:     "low",
		Label:    "Low Risk of MODS",
		Severity: SeveritySuccess,
		Advice:   "Continue routine monitoring per unit protocol.",
	}
	tierModerate = Tier{
		Name:     "moderate",
		Label:    "Moderate Risk of MODS",
		Severity: SeverityWarning,
		Advice:   "Consider increased monitoring frequency and early organ support review.",
	}
	tierHigh = Tier{
		Name:     "high",
		Label:    "High Risk of MODS",
		Severity: SeverityDanger,
		Advice:   "Escalate to the intensive care team for aggressive supportive management.",
	}
)

// Classify maps a probability onto a tier. Boundary values belong to
// the upper tier, so p == high is always High. A nil low threshold
// collapses the scale to two tiers.
func Classify(p float64, low *float64, high float64) Tier {
	if p >= high {
		return tierHigh
	}
	if low == nil || p < *low {
		return tierLow
	}
	return tierModerate
}

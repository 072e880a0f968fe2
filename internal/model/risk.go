package model

// riskUnknownStr is the string representation for unknown risk values.
const riskUnknownStr = "unknown"

// RiskLevel represents the risk label attached to categories and reports.
// It is a string type so the JSON representation matches the public API
// contract directly ("low", "medium", "high") without a translation layer.
//
// Design decision: We use string constants rather than iota-based integers
// because the labels are part of the wire format. The Points method provides
// the numeric severity when the scorer needs to aggregate.
type RiskLevel string

// Risk level constants.
const (
	// RiskLevelUnknown represents an unrecognized risk label.
	RiskLevelUnknown RiskLevel = ""
	// RiskLevelLow indicates limited exposure with low identity impact.
	RiskLevelLow RiskLevel = "low"
	// RiskLevelMedium indicates moderate exposure that warrants attention.
	RiskLevelMedium RiskLevel = "medium"
	// RiskLevelHigh indicates significant exposure such as financial or
	// identity-linked platforms.
	RiskLevelHigh RiskLevel = "high"
)

// Thresholds mapping an aggregate score to a risk level.
// Scores below ScoreThresholdMedium are low, scores below ScoreThresholdHigh
// are medium, and everything else is high.
const (
	// ScoreThresholdMedium is the lowest score labeled "medium".
	ScoreThresholdMedium = 30.0
	// ScoreThresholdHigh is the lowest score labeled "high".
	ScoreThresholdHigh = 60.0
)

// Category weight boundaries for weight-to-label mapping.
const (
	// weightHighMin is the lowest category weight labeled "high".
	weightHighMin = 8
	// weightMediumMin is the lowest category weight labeled "medium".
	weightMediumMin = 5
)

// String returns the string representation of the RiskLevel.
func (r RiskLevel) String() string {
	if r == RiskLevelUnknown {
		return riskUnknownStr
	}
	return string(r)
}

// IsValid returns true if this is a known risk level.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	default:
		return false
	}
}

// Points returns the scoring contribution of a category at this risk level.
// Unknown levels contribute nothing.
func (r RiskLevel) Points() int {
	switch r {
	case RiskLevelLow:
		return 2
	case RiskLevelMedium:
		return 5
	case RiskLevelHigh:
		return 10
	default:
		return 0
	}
}

// RiskLevelFromWeight maps a catalog risk weight to a risk level.
// Weights of 8 and above are high, 5 to 7 are medium, the rest are low.
func RiskLevelFromWeight(weight int) RiskLevel {
	switch {
	case weight >= weightHighMin:
		return RiskLevelHigh
	case weight >= weightMediumMin:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// RiskLevelFromScore maps an aggregate 0-100 score to a risk level.
// The boundaries are inclusive on the upper label: a score of exactly 30.0
// is medium and a score of exactly 60.0 is high.
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score < ScoreThresholdMedium:
		return RiskLevelLow
	case score < ScoreThresholdHigh:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// ParseRiskLevel converts a string to a RiskLevel.
func ParseRiskLevel(s string) RiskLevel {
	switch s {
	case "low":
		return RiskLevelLow
	case "medium":
		return RiskLevelMedium
	case "high":
		return RiskLevelHigh
	default:
		return RiskLevelUnknown
	}
}

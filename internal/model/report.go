package model

import (
	"time"

	"github.com/google/uuid"
)

// ExposureCategory is a class of platforms an identifier is heuristically
// likely to be registered with. One instance is emitted per catalog entry
// that matched during classification.
type ExposureCategory struct {
	// Name is the human-readable category name (e.g., "Social Media").
	Name string `json:"name"`

	// Platforms lists representative platform names in the category.
	Platforms []string `json:"platforms"`

	// RiskLevel is the category risk label (low, medium, high).
	RiskLevel RiskLevel `json:"risk_level"`

	// Explanation describes what data these platforms typically hold.
	Explanation string `json:"explanation"`
}

// BreachRecord is a third-party-reported historical data leak associated
// with the scanned identifier. Records are supplied by the breach lookup
// collaborator; zero or more per scan, capped at five.
type BreachRecord struct {
	// Name is the breach name as reported by the upstream source.
	Name string `json:"name"`

	// BreachDate is the reported date of the breach (YYYY-MM-DD).
	// Empty when the source does not report a date.
	BreachDate string `json:"breach_date,omitempty"`

	// DataExposed lists the exposed data class labels (e.g., "Passwords").
	DataExposed []string `json:"data_exposed"`

	// ActionRequired is the recommended response, derived from DataExposed.
	ActionRequired string `json:"action_required"`
}

// CleanupAction is a prioritized remediation step suggested to the user.
type CleanupAction struct {
	// Priority orders the plan; 1 is the most urgent.
	Priority int `json:"priority"`

	// Action describes what the user should do.
	Action string `json:"action"`

	// Platforms lists where the action applies.
	Platforms []string `json:"platforms"`

	// EstimatedTime is a rough human-readable effort estimate.
	EstimatedTime string `json:"estimated_time"`
}

// ScanReport is the main scan result structure.
// It aggregates the classifier, scorer, breach lookup, and cleanup planner
// output for one identifier. Reports are freshly allocated per scan and
// never persisted.
type ScanReport struct {
	// ID is a unique identifier for this scan.
	ID string `json:"scan_id"`

	// Identifier is the normalized identifier that was scanned.
	Identifier string `json:"identifier"`

	// IdentifierType is the kind of identifier (email or username).
	IdentifierType IdentifierType `json:"identifier_type"`

	// ExposureScore is the aggregate 0-100 risk score, rounded to one
	// decimal place for display.
	ExposureScore float64 `json:"exposure_score"`

	// RiskLevel is the three-tier label derived from ExposureScore.
	RiskLevel RiskLevel `json:"risk_level"`

	// Categories contains the matched exposure categories.
	Categories []ExposureCategory `json:"categories"`

	// Breaches contains known public breaches for the identifier.
	// Empty when the breach source is unavailable or reports nothing;
	// the two cases are intentionally indistinguishable.
	Breaches []BreachRecord `json:"breaches"`

	// CleanupPlan contains exactly three prioritized remediation actions.
	CleanupPlan []CleanupAction `json:"cleanup_plan"`

	// ScanTimestamp is the UTC completion time of the scan.
	ScanTimestamp time.Time `json:"scan_timestamp"`

	// Error contains any error that occurred during scanning.
	Error error `json:"-"` // Excluded from JSON

	// ErrorMessage is the string representation of Error for serialization.
	ErrorMessage string `json:"error,omitempty"` //nolint:tagliatelle // error is conventional
}

// NewScanReport creates a new report for the given identifier.
// The identifier is stored in normalized form and the timestamp is set to
// the current UTC time; pipeline steps refresh it on completion.
func NewScanReport(identifier string, idType IdentifierType) *ScanReport {
	return &ScanReport{
		ID:             uuid.NewString(),
		Identifier:     NormalizeIdentifier(identifier),
		IdentifierType: idType,
		RiskLevel:      RiskLevelLow,
		Categories:     make([]ExposureCategory, 0),
		Breaches:       make([]BreachRecord, 0),
		CleanupPlan:    make([]CleanupAction, 0),
		ScanTimestamp:  time.Now().UTC(),
	}
}

// AddCategory appends an exposure category to the report.
// A category with a name already present is ignored so one catalog entry
// appears at most once per scan.
func (r *ScanReport) AddCategory(category ExposureCategory) {
	for _, c := range r.Categories {
		if c.Name == category.Name {
			return
		}
	}
	r.Categories = append(r.Categories, category)
}

// CountByRisk returns the number of categories at the given risk level.
func (r *ScanReport) CountByRisk(level RiskLevel) int {
	count := 0
	for _, c := range r.Categories {
		if c.RiskLevel == level {
			count++
		}
	}
	return count
}

// CategoriesByRisk returns the categories filtered by risk level.
func (r *ScanReport) CategoriesByRisk(level RiskLevel) []ExposureCategory {
	var result []ExposureCategory
	for _, c := range r.Categories {
		if c.RiskLevel == level {
			result = append(result, c)
		}
	}
	return result
}

// HasBreaches returns true if any breach records were found.
func (r *ScanReport) HasBreaches() bool {
	return len(r.Breaches) > 0
}

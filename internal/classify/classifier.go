package classify

import (
	"github.com/footmap/footmap/internal/catalog"
	"github.com/footmap/footmap/internal/model"
)

// Classifier evaluates identifiers against the category catalog.
// It holds references to the process-wide read-only catalog tables, so a
// single Classifier is safe for concurrent use by any number of scans.
type Classifier struct {
	// email is the trigger-driven catalog for email identifiers.
	email []catalog.CategoryDefinition

	// username is the fixed catalog for username identifiers.
	username []catalog.UsernameCategory
}

// New creates a Classifier backed by the built-in catalogs.
func New() *Classifier {
	return &Classifier{
		email:    catalog.EmailCategories(),
		username: catalog.UsernameCategories(),
	}
}

// Classify returns the exposure categories matching the identifier.
//
// Malformed input is handled locally: an email identifier without an "@"
// separator yields an empty result rather than an error, so a bad
// identifier degrades the report instead of failing the scan.
func (c *Classifier) Classify(identifier string, idType model.IdentifierType) []model.ExposureCategory {
	switch idType {
	case model.IdentifierTypeEmail:
		return c.classifyEmail(identifier)
	case model.IdentifierTypeUsername:
		return c.classifyUsername(identifier)
	default:
		return []model.ExposureCategory{}
	}
}

// classifyEmail matches the email catalog against the identifier's features.
func (c *Classifier) classifyEmail(identifier string) []model.ExposureCategory {
	normalized := model.NormalizeIdentifier(identifier)

	_, domain, ok := model.SplitEmail(normalized)
	if !ok {
		return []model.ExposureCategory{}
	}

	satisfied := SatisfiedTags(ExtractEmailFeatures(domain))

	categories := make([]model.ExposureCategory, 0, len(c.email))
	for _, entry := range c.email {
		if !anyTagSatisfied(entry, satisfied) {
			continue
		}
		categories = append(categories, model.ExposureCategory{
			Name:        entry.Name,
			Platforms:   entry.Platforms,
			RiskLevel:   entry.RiskLevel(),
			Explanation: entry.Explanation,
		})
	}

	return categories
}

// classifyUsername returns the fixed username category list.
// The current rule set has no per-username heuristics: every username scan
// returns the same categories regardless of value.
func (c *Classifier) classifyUsername(_ string) []model.ExposureCategory {
	categories := make([]model.ExposureCategory, 0, len(c.username))
	for _, entry := range c.username {
		categories = append(categories, model.ExposureCategory{
			Name:        entry.Name,
			Platforms:   entry.Platforms,
			RiskLevel:   entry.RiskLevel,
			Explanation: entry.Explanation,
		})
	}
	return categories
}

// anyTagSatisfied reports whether any of the entry's trigger tags is in the
// satisfied set. An entry is included at most once no matter how many of
// its tags match.
func anyTagSatisfied(entry catalog.CategoryDefinition, satisfied map[catalog.Tag]bool) bool {
	for _, tag := range entry.Triggers {
		if satisfied[tag] {
			return true
		}
	}
	return false
}

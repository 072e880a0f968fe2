package scoring

import (
	"math"

	"github.com/footmap/footmap/internal/model"
)

// Scoring constants.
const (
	// BreachPoints is the score contribution of each known breach.
	BreachPoints = 15

	// MaxScore is the score ceiling; the aggregate is clamped here.
	MaxScore = 100.0
)

// Score aggregates exposure categories and breach records into the final
// 0-100 exposure score and its three-tier risk label.
//
// The formula is weight-based: each category contributes the points of its
// risk label (low 2, medium 5, high 10) and each breach adds a flat 15.
// The sum is clamped to [0,100] and rounded to one decimal place.
func Score(categories []model.ExposureCategory, breaches []model.BreachRecord) (float64, model.RiskLevel) {
	total := 0
	for _, c := range categories {
		total += c.RiskLevel.Points()
	}
	total += len(breaches) * BreachPoints

	score := math.Min(float64(total), MaxScore)
	score = math.Max(score, 0)
	score = math.Round(score*10) / 10

	return score, model.RiskLevelFromScore(score)
}

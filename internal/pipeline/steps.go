package pipeline

import (
	"context"
	"time"

	"github.com/footmap/footmap/internal/classify"
	"github.com/footmap/footmap/internal/model"
	"github.com/footmap/footmap/internal/scoring"
)

// BreachSource is the contract the pipeline requires from the breach lookup
// collaborator. Implementations never return an error: any upstream failure
// degrades to an empty record list.
type BreachSource interface {
	Lookup(ctx context.Context, identifier string) []model.BreachRecord
}

// ClassifyStep evaluates the identifier against the category catalog and
// records the matched exposure categories on the report.
type ClassifyStep struct {
	classifier *classify.Classifier
}

// NewClassifyStep creates a classification step backed by the classifier.
func NewClassifyStep(classifier *classify.Classifier) *ClassifyStep {
	return &ClassifyStep{classifier: classifier}
}

// Name returns the step name.
func (s *ClassifyStep) Name() string {
	return "classify"
}

// Do executes the classification step.
// Malformed identifiers yield no categories; that is a degraded result,
// not a step failure.
func (s *ClassifyStep) Do(_ context.Context, report *model.ScanReport) error {
	for _, category := range s.classifier.Classify(report.Identifier, report.IdentifierType) {
		report.AddCategory(category)
	}
	return nil
}

// BreachStep queries the breach source and records the results.
// With a nil source the step is a no-op, which disables breach enrichment
// without changing the pipeline shape.
type BreachStep struct {
	source BreachSource
}

// NewBreachStep creates a breach lookup step.
func NewBreachStep(source BreachSource) *BreachStep {
	return &BreachStep{source: source}
}

// Name returns the step name.
func (s *BreachStep) Name() string {
	return "breach_lookup"
}

// Do executes the breach lookup step. It never fails: the source contract
// guarantees an empty list on any upstream problem.
func (s *BreachStep) Do(ctx context.Context, report *model.ScanReport) error {
	if s.source == nil {
		return nil
	}
	report.Breaches = s.source.Lookup(ctx, report.Identifier)
	return nil
}

// ScoreStep computes the aggregate exposure score and risk label from the
// categories and breaches accumulated by earlier steps.
type ScoreStep struct{}

// NewScoreStep creates a scoring step.
func NewScoreStep() *ScoreStep {
	return &ScoreStep{}
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do executes the scoring step.
func (s *ScoreStep) Do(_ context.Context, report *model.ScanReport) error {
	report.ExposureScore, report.RiskLevel = scoring.Score(report.Categories, report.Breaches)
	return nil
}

// PlanStep generates the cleanup plan and stamps the report completion time.
// It runs last.
type PlanStep struct{}

// NewPlanStep creates a cleanup planning step.
func NewPlanStep() *PlanStep {
	return &PlanStep{}
}

// Name returns the step name.
func (s *PlanStep) Name() string {
	return "cleanup_plan"
}

// Do executes the planning step.
func (s *PlanStep) Do(_ context.Context, report *model.ScanReport) error {
	report.CleanupPlan = scoring.Plan(report.Categories)
	report.ScanTimestamp = time.Now().UTC()
	return nil
}

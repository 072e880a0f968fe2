package pipeline

import (
	"context"
	"log/slog"

	"github.com/footmap/footmap/internal/classify"
	"github.com/footmap/footmap/internal/model"
)

// Scanner is the report assembler: the single entry point combining the
// classifier, breach source, scorer, and cleanup planner into one scan.
// Both the CLI and the HTTP API run scans through a Scanner.
//
// A Scanner is safe for concurrent use: the catalog it wraps is read-only
// and every scan allocates a fresh report and pipeline.
type Scanner struct {
	// classifier evaluates identifiers against the catalog.
	classifier *classify.Classifier

	// breachSource supplies best-effort breach records. May be nil to
	// disable breach enrichment.
	breachSource BreachSource

	// logger is used for structured logging during scans.
	logger *slog.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithBreachSource sets the breach lookup collaborator.
func WithBreachSource(source BreachSource) ScannerOption {
	return func(s *Scanner) {
		s.breachSource = source
	}
}

// WithScannerLogger sets a custom logger.
func WithScannerLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner backed by the built-in catalogs.
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{
		classifier: classify.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Scan runs the full pipeline for one identifier and returns its report.
//
// The returned report is always non-nil. When a step fails or the context
// is cancelled, the error is returned and also recorded on the report so
// callers can choose either channel.
func (s *Scanner) Scan(ctx context.Context, identifier string, idType model.IdentifierType) (*model.ScanReport, error) {
	report := model.NewScanReport(identifier, idType)

	p := New(WithLogger(s.logger))
	p.AddSteps(
		NewClassifyStep(s.classifier),
		NewBreachStep(s.breachSource),
		NewScoreStep(),
		NewPlanStep(),
	)

	if err := p.Execute(ctx, report); err != nil {
		return report, err
	}

	s.logger.Debug("scan complete",
		"scan_id", report.ID,
		"identifier_type", report.IdentifierType,
		"categories", len(report.Categories),
		"breaches", len(report.Breaches),
		"score", report.ExposureScore,
	)

	return report, nil
}

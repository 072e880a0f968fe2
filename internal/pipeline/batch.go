package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/footmap/footmap/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent scanning of multiple identifiers.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Scanner because:
// 1. It keeps the Scanner focused on single-scan execution
// 2. It allows different batch strategies without touching scan logic
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// scanner performs the individual scans. Scans for different
	// identifiers are fully independent, so one shared Scanner suffices.
	scanner *Scanner

	// concurrency is the maximum number of concurrent scans.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed scan reports in input order.
	// Access is synchronized via mutex.
	results []*model.ScanReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent scans.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor around a Scanner.
func NewBatchProcessor(scanner *Scanner, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		scanner:     scanner,
		concurrency: 10,
		results:     make([]*model.ScanReport, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// BatchTarget is one identifier to scan with its resolved type.
type BatchTarget struct {
	// Identifier is the raw identifier supplied by the caller.
	Identifier string

	// Type is the identifier type to classify with.
	Type model.IdentifierType
}

// ProcessBatch scans multiple identifiers concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each identifier gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns all reports in input order, even for scans that failed; a failed
// scan's report carries its error. The error return indicates that the
// batch was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, targets []BatchTarget) ([]*model.ScanReport, error) {
	bp.logger.Info("starting batch scan",
		"total_targets", len(targets),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain input order
	bp.results = make([]*model.ScanReport, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := bp.scanner.Scan(ctx, target.Identifier, target.Type)

			// Store result regardless of error
			// The report contains error information if the scan failed
			bp.mu.Lock()
			bp.results[i] = report
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("scan failed",
					"index", i+1,
					"total", len(targets),
					"error", err,
				)
				// Don't return the error to errgroup - we want to
				// continue other scans. It is recorded in the report.
				return nil
			}

			return nil
		})
	}

	// Wait for all scans to complete
	err := g.Wait()

	bp.logger.Info("batch scan complete",
		"total_targets", len(targets),
		"elapsed", time.Since(startTime),
	)

	return bp.results, err
}

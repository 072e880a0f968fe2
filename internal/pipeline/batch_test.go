package pipeline

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/footmap/footmap/internal/model"
)

// countingBreachSource tracks how many lookups run concurrently.
type countingBreachSource struct {
	mu      sync.Mutex
	active  int32
	maxSeen int32
}

func (c *countingBreachSource) Lookup(_ context.Context, _ string) []model.BreachRecord {
	current := atomic.AddInt32(&c.active, 1)
	c.mu.Lock()
	if current > c.maxSeen {
		c.maxSeen = current
	}
	c.mu.Unlock()

	time.Sleep(10 * time.Millisecond)
	atomic.AddInt32(&c.active, -1)
	return nil
}

// TestProcessBatch tests concurrent batch scanning.
func TestProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("returns reports in input order", func(t *testing.T) {
		t.Parallel()

		targets := []BatchTarget{
			{Identifier: "user@gmail.com", Type: model.IdentifierTypeEmail},
			{Identifier: "cooluser42", Type: model.IdentifierTypeUsername},
			{Identifier: "someone@corp.com", Type: model.IdentifierTypeEmail},
		}

		bp := NewBatchProcessor(NewScanner())
		reports, err := bp.ProcessBatch(context.Background(), targets)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != len(targets) {
			t.Fatalf("expected %d reports, got %d", len(targets), len(reports))
		}
		for i, report := range reports {
			if report == nil {
				t.Fatalf("report %d is nil", i)
			}
			if report.Identifier != targets[i].Identifier {
				t.Errorf("report %d: expected identifier %q, got %q", i, targets[i].Identifier, report.Identifier)
			}
		}
	})

	t.Run("respects the concurrency limit", func(t *testing.T) {
		t.Parallel()

		source := &countingBreachSource{}
		scanner := NewScanner(WithBreachSource(source))

		targets := make([]BatchTarget, 8)
		for i := range targets {
			targets[i] = BatchTarget{Identifier: "user@gmail.com", Type: model.IdentifierTypeEmail}
		}

		bp := NewBatchProcessor(scanner, WithConcurrency(2))
		if _, err := bp.ProcessBatch(context.Background(), targets); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		source.mu.Lock()
		maxSeen := source.maxSeen
		source.mu.Unlock()
		if maxSeen > 2 {
			t.Errorf("expected at most 2 concurrent scans, observed %d", maxSeen)
		}
	})

	t.Run("empty target list yields no reports", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(NewScanner())
		reports, err := bp.ProcessBatch(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 0 {
			t.Errorf("expected no reports, got %d", len(reports))
		}
	})

	t.Run("cancelled context stops the batch", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		targets := []BatchTarget{
			{Identifier: "user@gmail.com", Type: model.IdentifierTypeEmail},
		}

		bp := NewBatchProcessor(NewScanner())
		if _, err := bp.ProcessBatch(ctx, targets); err == nil {
			t.Fatal("expected an error for a cancelled batch")
		}
	})
}

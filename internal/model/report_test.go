package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// TestNewScanReport tests report construction defaults.
func TestNewScanReport(t *testing.T) {
	t.Parallel()

	report := NewScanReport("  User@Gmail.com ", IdentifierTypeEmail)

	t.Run("identifier is normalized", func(t *testing.T) {
		t.Parallel()
		if report.Identifier != "user@gmail.com" {
			t.Errorf("expected normalized identifier, got %q", report.Identifier)
		}
	})

	t.Run("scan ID is assigned", func(t *testing.T) {
		t.Parallel()
		if report.ID == "" {
			t.Error("expected non-empty scan ID")
		}
	})

	t.Run("timestamp is UTC", func(t *testing.T) {
		t.Parallel()
		if report.ScanTimestamp.Location() != time.UTC {
			t.Errorf("expected UTC timestamp, got %v", report.ScanTimestamp.Location())
		}
	})

	t.Run("collections are empty but non-nil", func(t *testing.T) {
		t.Parallel()
		if report.Categories == nil || len(report.Categories) != 0 {
			t.Errorf("expected empty Categories, got %v", report.Categories)
		}
		if report.Breaches == nil || len(report.Breaches) != 0 {
			t.Errorf("expected empty Breaches, got %v", report.Breaches)
		}
		if report.CleanupPlan == nil || len(report.CleanupPlan) != 0 {
			t.Errorf("expected empty CleanupPlan, got %v", report.CleanupPlan)
		}
	})

	t.Run("IDs are unique across reports", func(t *testing.T) {
		t.Parallel()
		other := NewScanReport("user@gmail.com", IdentifierTypeEmail)
		if report.ID == other.ID {
			t.Error("expected distinct scan IDs for distinct reports")
		}
	})
}

// TestScanReportAddCategory tests category deduplication by name.
func TestScanReportAddCategory(t *testing.T) {
	t.Parallel()

	report := NewScanReport("user@gmail.com", IdentifierTypeEmail)

	report.AddCategory(ExposureCategory{Name: "Social Media", RiskLevel: RiskLevelMedium})
	report.AddCategory(ExposureCategory{Name: "Fintech", RiskLevel: RiskLevelHigh})
	report.AddCategory(ExposureCategory{Name: "Social Media", RiskLevel: RiskLevelHigh}) // duplicate

	if len(report.Categories) != 2 {
		t.Fatalf("expected 2 categories after duplicate add, got %d", len(report.Categories))
	}

	// The first occurrence wins
	if report.Categories[0].RiskLevel != RiskLevelMedium {
		t.Errorf("expected first occurrence to be kept, got %v", report.Categories[0].RiskLevel)
	}
}

// TestScanReportCountByRisk tests the per-level category counters.
func TestScanReportCountByRisk(t *testing.T) {
	t.Parallel()

	report := NewScanReport("user@gmail.com", IdentifierTypeEmail)
	report.AddCategory(ExposureCategory{Name: "A", RiskLevel: RiskLevelHigh})
	report.AddCategory(ExposureCategory{Name: "B", RiskLevel: RiskLevelMedium})
	report.AddCategory(ExposureCategory{Name: "C", RiskLevel: RiskLevelMedium})

	testCases := []struct {
		level    RiskLevel
		expected int
	}{
		{RiskLevelHigh, 1},
		{RiskLevelMedium, 2},
		{RiskLevelLow, 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.level.String(), func(t *testing.T) {
			t.Parallel()
			if got := report.CountByRisk(tc.level); got != tc.expected {
				t.Errorf("CountByRisk(%v) = %d, expected %d", tc.level, got, tc.expected)
			}
		})
	}
}

// TestScanReportJSON tests that the JSON shape matches the API contract.
func TestScanReportJSON(t *testing.T) {
	t.Parallel()

	report := NewScanReport("user@gmail.com", IdentifierTypeEmail)
	report.ExposureScore = 76.5
	report.RiskLevel = RiskLevelHigh

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	body := string(data)
	for _, want := range []string{
		`"exposure_score":76.5`,
		`"risk_level":"high"`,
		`"identifier_type":"email"`,
		`"categories":[]`,
		`"breaches":[]`,
		`"cleanup_plan":[]`,
		`"scan_timestamp"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected JSON to contain %s, got %s", want, body)
		}
	}

	// Error is excluded from JSON unless ErrorMessage is set
	if strings.Contains(body, `"error"`) {
		t.Errorf("expected no error field for successful report, got %s", body)
	}
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/footmap/footmap/internal/config"
	"github.com/footmap/footmap/internal/pipeline"
)

// newTestServer creates a server with an in-memory limiter for tests.
func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()

	cfg := config.NewConfig()
	return New(cfg, pipeline.NewScanner(), opts...)
}

// doRequest performs a request against the server's handler.
func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// TestHealthEndpoint tests the liveness probe.
func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected status healthy, got %q", body["status"])
	}
}

// TestRootEndpoint tests the service banner.
func TestRootEndpoint(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "online") {
		t.Errorf("expected banner to report online, got %s", rec.Body.String())
	}
}

// TestScanEndpoint tests the scan handler.
func TestScanEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("valid email scan returns a report", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodPost, "/api/scan",
			`{"identifier":"user@gmail.com","identifier_type":"email"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body struct {
			ExposureScore float64          `json:"exposure_score"`
			RiskLevel     string           `json:"risk_level"`
			Categories    []map[string]any `json:"categories"`
			Breaches      []map[string]any `json:"breaches"`
			CleanupPlan   []map[string]any `json:"cleanup_plan"`
			ScanTimestamp time.Time        `json:"scan_timestamp"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}

		if body.ExposureScore != 46.0 {
			t.Errorf("expected score 46.0, got %v", body.ExposureScore)
		}
		if body.RiskLevel != "medium" {
			t.Errorf("expected risk level medium, got %q", body.RiskLevel)
		}
		if len(body.Categories) != 10 {
			t.Errorf("expected 10 categories, got %d", len(body.Categories))
		}
		if len(body.CleanupPlan) != 3 {
			t.Errorf("expected 3 cleanup actions, got %d", len(body.CleanupPlan))
		}
		if body.Breaches == nil {
			t.Error("expected breaches to be an empty array, not null")
		}
		if body.ScanTimestamp.IsZero() {
			t.Error("expected a scan timestamp")
		}
	})

	t.Run("username scan returns the fixed categories", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodPost, "/api/scan",
			`{"identifier":"cooluser42","identifier_type":"username"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body struct {
			Categories []map[string]any `json:"categories"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if len(body.Categories) != 4 {
			t.Errorf("expected 4 categories, got %d", len(body.Categories))
		}
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodPost, "/api/scan", `{"identifier":"user@gmail.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("unknown identifier type returns 400", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodPost, "/api/scan",
			`{"identifier":"user@gmail.com","identifier_type":"phone"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "identifier_type") {
			t.Errorf("expected error to mention identifier_type, got %s", rec.Body.String())
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := doRequest(t, s, http.MethodPost, "/api/scan", `{"identifier":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

// failingLimiter always reports a backend failure.
type failingLimiter struct{}

func (failingLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return false, errors.New("backend down")
}

// denyingLimiter always rejects.
type denyingLimiter struct{}

func (denyingLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return false, nil
}

// TestRateLimiting tests limiter integration with the scan endpoint.
func TestRateLimiting(t *testing.T) {
	t.Parallel()

	t.Run("over-limit requests get 429 before core logic", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t, WithLimiter(NewMemoryLimiter(2, time.Hour)))

		body := `{"identifier":"user@gmail.com","identifier_type":"email"}`
		for i := 0; i < 2; i++ {
			if rec := doRequest(t, s, http.MethodPost, "/api/scan", body); rec.Code != http.StatusOK {
				t.Fatalf("request %d: expected status 200, got %d", i+1, rec.Code)
			}
		}

		rec := doRequest(t, s, http.MethodPost, "/api/scan", body)
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected status 429, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Rate limit exceeded") {
			t.Errorf("expected rejection message, got %s", rec.Body.String())
		}
	})

	t.Run("denied requests never reach the scanner", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t, WithLimiter(denyingLimiter{}))

		rec := doRequest(t, s, http.MethodPost, "/api/scan",
			`{"identifier":"user@gmail.com","identifier_type":"email"}`)
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected status 429, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "exposure_score") {
			t.Error("expected no scan result in a rejected response")
		}
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t, WithLimiter(failingLimiter{}))

		rec := doRequest(t, s, http.MethodPost, "/api/scan",
			`{"identifier":"user@gmail.com","identifier_type":"email"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200 when limiter is down, got %d", rec.Code)
		}
	})

	t.Run("health endpoint is not rate limited", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t, WithLimiter(denyingLimiter{}))

		rec := doRequest(t, s, http.MethodGet, "/api/health", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})
}

// TestCORS tests the CORS middleware.
func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("expected CORS origin header, got %q", got)
		}
	})

	t.Run("allowed origin may send credentials", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("expected credentials header for a listed origin, got %q", got)
		}
	})

	t.Run("wildcard origin reflects without credentials", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.CORSOrigins = []string{"*"}
		s := New(cfg, pipeline.NewScanner())

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example" {
			t.Errorf("expected reflected origin, got %q", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
			t.Errorf("expected no credentials header under wildcard, got %q", got)
		}
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no CORS origin header, got %q", got)
		}
	})

	t.Run("preflight request returns 204", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/scan", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
			t.Errorf("expected allowed methods to include POST, got %q", got)
		}
	})
}

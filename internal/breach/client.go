package breach

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/footmap/footmap/internal/model"
)

// Default client settings.
const (
	// DefaultBaseURL is the root of the public Have I Been Pwned v3 API.
	DefaultBaseURL = "https://haveibeenpwned.com/api/v3"

	// breachedAccountPath is the per-identifier lookup resource under the
	// API root. The client appends it so callers configure only the root.
	breachedAccountPath = "breachedaccount"

	// DefaultTimeout bounds the breach lookup. Breach data is optional,
	// so the report must not wait longer than this for it.
	DefaultTimeout = 10 * time.Second

	// MaxRecords is the maximum number of breach records retained per
	// scan. The upstream source orders records by relevance; anything
	// beyond the first five adds noise, not signal.
	MaxRecords = 5

	// userAgent identifies footmap in upstream requests. The HIBP API
	// rejects requests without a User-Agent header.
	userAgent = "footmap/1.0"

	// apiKeyHeader is the HIBP API key header name.
	apiKeyHeader = "hibp-api-key"

	// maxBodySize limits how much of the upstream response is read.
	maxBodySize = 1 << 20 // 1MB
)

// upstreamBreach mirrors the subset of the upstream JSON we consume.
type upstreamBreach struct {
	Name        string   `json:"Name"`        //nolint:tagliatelle // upstream field name
	BreachDate  string   `json:"BreachDate"`  //nolint:tagliatelle // upstream field name
	DataClasses []string `json:"DataClasses"` //nolint:tagliatelle // upstream field name
}

// Client queries a breach database for an identifier.
// The zero value is not usable; create clients with NewClient.
type Client struct {
	// baseURL is the upstream API root without trailing slash.
	baseURL string

	// apiKey is sent in the hibp-api-key header when non-empty.
	apiKey string

	// httpClient performs the upstream requests.
	httpClient *http.Client

	// logger records lookup failures at debug level. Failures are
	// expected operation, not errors worth surfacing.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream API root. Used for self-hosted
// mirrors and in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithAPIKey sets the upstream API key.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout overrides the lookup timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a breach lookup client with default settings.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Lookup returns known breach records for the identifier, capped at
// MaxRecords. It never returns an error: any failure degrades to an empty
// list so report generation is never blocked by the breach source.
// Cancelling the context aborts the request and likewise yields an empty list.
func (c *Client) Lookup(ctx context.Context, identifier string) []model.BreachRecord {
	records := make([]model.BreachRecord, 0, MaxRecords)

	endpoint := c.baseURL + "/" + breachedAccountPath + "/" + url.PathEscape(model.NormalizeIdentifier(identifier))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Debug("breach lookup request build failed", "error", err)
		return records
	}
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("breach lookup failed", "error", err)
		return records
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort cleanup

	// The upstream returns 404 for identifiers with no known breaches.
	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("breach lookup non-success status", "status", resp.StatusCode)
		return records
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logger.Debug("breach lookup read failed", "error", err)
		return records
	}

	var upstream []upstreamBreach
	if err := json.Unmarshal(body, &upstream); err != nil {
		c.logger.Debug("breach lookup decode failed", "error", err)
		return records
	}

	for _, b := range upstream {
		if len(records) >= MaxRecords {
			break
		}
		name := b.Name
		if name == "" {
			name = "Unknown"
		}
		records = append(records, model.BreachRecord{
			Name:           name,
			BreachDate:     b.BreachDate,
			DataExposed:    b.DataClasses,
			ActionRequired: RecommendedAction(b.DataClasses),
		})
	}

	return records
}

// RecommendedAction derives actionable advice from the exposed data classes.
// Password exposure outranks email exposure; anything else gets generic
// scam-awareness advice.
func RecommendedAction(dataClasses []string) string {
	exposed := make(map[string]bool, len(dataClasses))
	for _, class := range dataClasses {
		exposed[class] = true
	}

	switch {
	case exposed["Passwords"]:
		return "Change your password immediately on affected platforms"
	case exposed["Email addresses"]:
		return "Monitor for phishing emails and spam"
	default:
		return "Stay alert for targeted scams using your exposed data"
	}
}

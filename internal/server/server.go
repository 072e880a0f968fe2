package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/footmap/footmap/internal/config"
	"github.com/footmap/footmap/internal/model"
	"github.com/footmap/footmap/internal/pipeline"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// shutdownTimeout bounds graceful shutdown after the context is cancelled.
const shutdownTimeout = 10 * time.Second

// Server is the footmap HTTP API.
// It wraps a gin engine, the scan pipeline, and the rate limiter.
type Server struct {
	cfg     *config.Config
	scanner *pipeline.Scanner
	limiter Limiter
	logger  *slog.Logger
	engine  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLimiter sets the rate limiter. Passing nil disables rate limiting.
// When unset, New picks redis or in-memory based on the configuration.
func WithLimiter(limiter Limiter) Option {
	return func(s *Server) {
		s.limiter = limiter
	}
}

// WithServerLogger sets a custom logger.
func WithServerLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a Server around the given scanner.
// Unless a limiter is injected, scans are limited per client IP using
// redis when an address is configured, otherwise in process memory.
func New(cfg *config.Config, scanner *pipeline.Scanner, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		scanner: scanner,
	}

	limiterSet := false
	for _, opt := range opts {
		opt(s)
		if s.limiter != nil {
			limiterSet = true
		}
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if !limiterSet && cfg.RateLimitPerHour > 0 {
		s.limiter = s.newLimiter()
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.registerRoutes()

	return s
}

// newLimiter builds the limiter the configuration asks for.
func (s *Server) newLimiter() Limiter {
	if s.cfg.RedisAddress != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     s.cfg.RedisAddress,
			Password: s.cfg.RedisPassword,
			DB:       s.cfg.RedisDB,
		})
		return NewRedisLimiter(client, s.cfg.RateLimitPerHour, s.cfg.RateLimitWindow)
	}

	s.logger.Info("no redis address configured, using in-memory rate limiter")
	return NewMemoryLimiter(s.cfg.RateLimitPerHour, s.cfg.RateLimitWindow)
}

// registerRoutes wires middleware and endpoints.
func (s *Server) registerRoutes() {
	s.engine.Use(corsMiddleware(s.cfg.CORSOrigins))

	s.engine.GET("/", s.handleRoot)

	api := s.engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/scan",
		rateLimitMiddleware(s.limiter, s.cfg.RateLimitPerHour, s.cfg.RateLimitWindow, s.logger),
		s.handleScan,
	)
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddress,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("http api listening", "address", s.cfg.ListenAddress)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// scanRequest is the POST /api/scan request body.
type scanRequest struct {
	Identifier     string `json:"identifier" binding:"required"`
	IdentifierType string `json:"identifier_type" binding:"required"` //nolint:tagliatelle // API field name is fixed
}

// handleRoot serves the service banner.
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"message": "footmap API",
	})
}

// handleHealth serves the liveness probe.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// handleScan runs the pipeline for one identifier and returns the report.
// Internal failures are logged server-side, then surfaced as a generic
// server error with the triggering message attached.
func (s *Server) handleScan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request: identifier and identifier_type are required",
		})
		return
	}

	idType := model.ParseIdentifierType(req.IdentifierType)
	if !idType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid identifier_type: must be \"email\" or \"username\"",
		})
		return
	}

	report, err := s.scanner.Scan(c.Request.Context(), req.Identifier, idType)
	if err != nil {
		s.logger.Error("scan failed",
			"scan_id", report.ID,
			"identifier_type", idType,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Scan failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

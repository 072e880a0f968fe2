// Package server provides the HTTP API for footmap.
//
// The API exposes three endpoints:
//   - GET  /           service banner
//   - GET  /api/health liveness probe
//   - POST /api/scan   run a scan for one identifier
//
// Requests pass through CORS and per-client rate limiting middleware
// before reaching the scan pipeline. The rate limiter fails open: a
// broken limiter backend must not take the service down.
package server

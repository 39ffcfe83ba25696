// Package middleware provides HTTP middleware for the Motion API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: structured access log via slog
//   - Recovery: turns panics into a JSON 500
//   - Metrics.Middleware: Prometheus request counters and latency histograms
//   - CORS: origin allow-list
//   - RateLimit: per-client token bucket built on x/time/rate
//   - Compress: gzip for clients that accept it
//   - Idempotency: replays POST/PATCH responses keyed by Idempotency-Key,
//     backed by memory or Redis
//
// Middleware is composed with Chain; the first middleware listed is outermost:
//
//	h := middleware.Chain(mux, middleware.RequestID, middleware.Logger)
//
// Request bodies are capped at MaxBodyBytes by Idempotency and by the
// handler package's JSON decoding.
//
// # Context Values
//
//   - GetRequestID(ctx): the request ID set by RequestID
package middleware

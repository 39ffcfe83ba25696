package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/motionhq/motion/api/internal/model"
)

// ErrIdempotencyInFlight is returned by a store when another request holds the key
var ErrIdempotencyInFlight = errors.New("idempotent request already in progress")

// CachedResponse is a stored response replayed for a repeated Idempotency-Key
type CachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// IdempotencyStore reserves keys and keeps completed responses.
//
// Begin returns a cached response when one exists, nil when the caller now
// owns the key, or ErrIdempotencyInFlight. The owner must call Complete or
// Release.
type IdempotencyStore interface {
	Begin(ctx context.Context, key string) (*CachedResponse, error)
	Complete(ctx context.Context, key string, resp *CachedResponse) error
	Release(ctx context.Context, key string) error
}

// IdempotencyConfig holds configuration for idempotency stores
type IdempotencyConfig struct {
	TTL     time.Duration // How long to keep results (default 24h)
	Cleanup time.Duration // Memory store cleanup interval (default 1h)
	LockTTL time.Duration // Redis in-flight reservation lifetime (default 2m)
}

func (c *IdempotencyConfig) applyDefaults() {
	if c.TTL == 0 {
		c.TTL = 24 * time.Hour
	}
	if c.Cleanup == 0 {
		c.Cleanup = time.Hour
	}
	if c.LockTTL == 0 {
		c.LockTTL = 2 * time.Minute
	}
}

// ============================================================================
// Memory store
// ============================================================================

// MemoryIdempotencyStore keeps entries in process. A second request for an
// in-flight key waits for the first one to finish.
type MemoryIdempotencyStore struct {
	mu       sync.Mutex
	entries  map[string]*idempotencyEntry
	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

type idempotencyEntry struct {
	resp      *CachedResponse
	expiresAt time.Time
	done      chan struct{}
}

func (e *idempotencyEntry) inFlight() bool {
	return e.resp == nil
}

// NewMemoryIdempotencyStore creates a new in-process store
func NewMemoryIdempotencyStore(cfg IdempotencyConfig) *MemoryIdempotencyStore {
	cfg.applyDefaults()

	store := &MemoryIdempotencyStore{
		entries:  make(map[string]*idempotencyEntry),
		ttl:      cfg.TTL,
		stopChan: make(chan struct{}),
	}

	go store.cleanupLoop(cfg.Cleanup)

	return store
}

// Stop stops the cleanup goroutine
func (s *MemoryIdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

func (s *MemoryIdempotencyStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *MemoryIdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, entry := range s.entries {
		if !entry.inFlight() && entry.expiresAt.Before(now) {
			delete(s.entries, key)
		}
	}
}

func (s *MemoryIdempotencyStore) Begin(ctx context.Context, key string) (*CachedResponse, error) {
	for {
		s.mu.Lock()
		entry, exists := s.entries[key]

		if !exists || (!entry.inFlight() && entry.expiresAt.Before(time.Now())) {
			s.entries[key] = &idempotencyEntry{done: make(chan struct{})}
			s.mu.Unlock()
			return nil, nil
		}

		if !entry.inFlight() {
			s.mu.Unlock()
			return entry.resp, nil
		}

		done := entry.done
		s.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (s *MemoryIdempotencyStore) Complete(_ context.Context, key string, resp *CachedResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || !entry.inFlight() {
		return nil
	}
	entry.resp = resp
	entry.expiresAt = time.Now().Add(s.ttl)
	close(entry.done)
	return nil
}

func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || !entry.inFlight() {
		return nil
	}
	delete(s.entries, key)
	close(entry.done)
	return nil
}

// ============================================================================
// Redis store
// ============================================================================

const (
	idempotencyKeyPrefix = "motion:idempotency:"
	pendingMarker        = "pending"
)

// RedisIdempotencyStore shares idempotency state across instances. An
// in-flight key is answered with ErrIdempotencyInFlight instead of waiting.
type RedisIdempotencyStore struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

// NewRedisIdempotencyStore wraps an existing client
func NewRedisIdempotencyStore(client *redis.Client, cfg IdempotencyConfig) *RedisIdempotencyStore {
	cfg.applyDefaults()
	return &RedisIdempotencyStore{
		client:  client,
		ttl:     cfg.TTL,
		lockTTL: cfg.LockTTL,
	}
}

// NewRedisClient parses a redis:// URL and verifies the connection
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *RedisIdempotencyStore) Begin(ctx context.Context, key string) (*CachedResponse, error) {
	redisKey := idempotencyKeyPrefix + key

	acquired, err := s.client.SetNX(ctx, redisKey, pendingMarker, s.lockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if acquired {
		return nil, nil
	}

	raw, err := s.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		// Released or expired between the two calls
		return nil, ErrIdempotencyInFlight
	}
	if err != nil {
		return nil, fmt.Errorf("load idempotency key: %w", err)
	}
	if string(raw) == pendingMarker {
		return nil, ErrIdempotencyInFlight
	}

	var resp CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode cached response: %w", err)
	}
	return &resp, nil
}

func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, resp *CachedResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode cached response: %w", err)
	}
	return s.client.Set(ctx, idempotencyKeyPrefix+key, raw, s.ttl).Err()
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, idempotencyKeyPrefix+key).Err()
}

// ============================================================================
// Middleware
// ============================================================================

// generateKey creates a unique key from client, idempotency key, and request fingerprint
func generateKey(client, idempotencyKey, method, path string, body []byte) string {
	h := sha256.New()
	for _, part := range []string{client, idempotencyKey, method, path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// idempotencyResponseWriter captures the response for caching
type idempotencyResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *idempotencyResponseWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *idempotencyResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *idempotencyResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// handlerHeaders keeps only the headers set by the wrapped handler.
// Outer middleware headers, and the encoding Compress picks per request,
// are written fresh on every replay.
func handlerHeaders(h, preset http.Header) http.Header {
	out := make(http.Header)
	for k, v := range h {
		if _, ok := preset[k]; ok {
			continue
		}
		if k == "Content-Encoding" || k == "Content-Length" {
			continue
		}
		out[k] = append([]string(nil), v...)
	}
	return out
}

func replay(w http.ResponseWriter, resp *CachedResponse) {
	for k, v := range resp.Header {
		for _, val := range v {
			w.Header().Add(k, val)
		}
	}
	w.Header().Set("X-Idempotency-Replayed", "true")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

// Idempotency returns middleware that replays responses for POST/PATCH
// requests repeating an Idempotency-Key. Server errors are not cached so
// the client can retry them. Store failures fall through to the handler.
func Idempotency(store IdempotencyStore) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodPatch {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := r.Header.Get("Idempotency-Key")
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					model.NewBadRequestError("request body too large").WriteJSON(w)
					return
				}
				model.NewBadRequestError("invalid request body").WriteJSON(w)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			ctx := r.Context()
			key := generateKey(clientKey(r), idempotencyKey, r.Method, r.URL.Path, body)

			cached, err := store.Begin(ctx, key)
			switch {
			case errors.Is(err, ErrIdempotencyInFlight):
				model.NewConflictError("A request with this Idempotency-Key is already in progress").WriteJSON(w)
				return
			case err != nil:
				slog.WarnContext(ctx, "idempotency store unavailable",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(ctx)),
				)
				next.ServeHTTP(w, r)
				return
			case cached != nil:
				replay(w, cached)
				return
			}

			irw := &idempotencyResponseWriter{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			preset := w.Header().Clone()
			completed := false
			defer func() {
				if !completed {
					_ = store.Release(context.WithoutCancel(ctx), key)
				}
			}()

			next.ServeHTTP(irw, r)

			if irw.status >= http.StatusInternalServerError {
				return
			}

			resp := &CachedResponse{
				Status: irw.status,
				Header: handlerHeaders(irw.Header(), preset),
				Body:   bytes.Clone(irw.body.Bytes()),
			}
			if err := store.Complete(context.WithoutCancel(ctx), key, resp); err != nil {
				slog.WarnContext(ctx, "failed to store idempotent response",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(ctx)),
				)
				return
			}
			completed = true
		})
	}
}

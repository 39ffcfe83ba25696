package main

import (
	"context"

	"github.com/motionhq/motion/api/internal/middleware"
)

// newIdempotencyStore returns a Redis-backed store when redisURL is set and
// an in-process store otherwise, plus a function that releases it.
func newIdempotencyStore(ctx context.Context, redisURL string) (middleware.IdempotencyStore, func(), error) {
	if redisURL == "" {
		store := middleware.NewMemoryIdempotencyStore(middleware.IdempotencyConfig{})
		return store, store.Stop, nil
	}

	client, err := middleware.NewRedisClient(ctx, redisURL)
	if err != nil {
		return nil, nil, err
	}
	store := middleware.NewRedisIdempotencyStore(client, middleware.IdempotencyConfig{})
	return store, func() { _ = client.Close() }, nil
}

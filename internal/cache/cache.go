// Package cache provides an optional result cache for the HTTP server. The
// engine itself is a pure function; caching is transport-layer memoization
// and never a source of truth.
package cache

import (
	"context"
	"time"
)

// Cache stores serialized schedule responses keyed by a request hash.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

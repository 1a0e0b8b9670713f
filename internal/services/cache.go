package services

import (
	"context"
	"time"
)

// Cache is the small surface the stats endpoint needs. A failed Get is a
// cache miss, never an error surfaced to the caller.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
}

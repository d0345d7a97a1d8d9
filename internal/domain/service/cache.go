package service

import (
	"context"
	"time"

	"venture/internal/errors"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a small byte-oriented key/value cache with per-entry TTL.
type Cache interface {
	// Get returns the stored value or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

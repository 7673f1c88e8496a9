package cache

import (
	"context"
	"time"
)

// Cache is the caching interface for computed assessments. All cache
// operations go through here. Implementations must be safe for
// concurrent use.
//
// A failed Get is reported as an error, never as a hit: callers treat
// cache failure as a miss and recompute.
type Cache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// MemoryCache is a simple in-memory implementation of Cache with
// expiration. It is the default when Redis is not configured.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	clk   clock.Clock
	stop  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value      []byte
	expireTime time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithClock(clock.New())
}

// NewMemoryCacheWithClock creates an in-memory cache on an injected
// clock. Tests pass a mock clock to control expiry.
func NewMemoryCacheWithClock(clk clock.Clock) *MemoryCache {
	c := &MemoryCache{
		items: make(map[string]*memoryItem),
		clk:   clk,
		stop:  make(chan struct{}),
	}

	// Cleanup goroutine removes expired items in the background
	go c.cleanupExpired()

	return c
}

// Set stores a key-value pair with expiration
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &memoryItem{
		value:      value,
		expireTime: c.clk.Now().Add(ttl),
	}
	return nil
}

// Get retrieves a value by key. Expired entries count as misses.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists {
		return nil, false, nil
	}

	if c.clk.Now().After(item.expireTime) {
		return nil, false, nil
	}

	return item.value, true, nil
}

// Delete removes a key
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// Ping always succeeds for the in-process cache
func (c *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

// Close stops the cleanup goroutine
func (c *MemoryCache) Close() {
	c.once.Do(func() {
		close(c.stop)
	})
}

// cleanupExpired periodically removes expired items
func (c *MemoryCache) cleanupExpired() {
	ticker := c.clk.Ticker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := c.clk.Now()
			for key, item := range c.items {
				if now.After(item.expireTime) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

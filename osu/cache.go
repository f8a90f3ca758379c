package osu

import (
	"time"

	"github.com/maypok86/otter/v2"
)

const (
	DefaultCacheTTL  = 30 * time.Second
	DefaultCacheSize = 1000

	// entries without expiry still yield to the size bound
	noExpiry = 100 * 365 * 24 * time.Hour
)

// CachedResponse is a completed response with its lifetime.
type CachedResponse struct {
	APIResponse
	ExpiresIn time.Duration
}

// ResponseCache maps request fingerprints to completed responses.
// Entries become invisible once their ExpiresIn has elapsed since insertion.
type ResponseCache struct {
	cache *otter.Cache[string, CachedResponse]
}

func NewResponseCache(maxSize int) *ResponseCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	cache := otter.Must(&otter.Options[string, CachedResponse]{
		MaximumSize: maxSize,
		ExpiryCalculator: otter.ExpiryCreatingFunc(func(entry otter.Entry[string, CachedResponse]) time.Duration {
			if entry.Value.ExpiresIn <= 0 {
				return noExpiry
			}
			return entry.Value.ExpiresIn
		}),
	})
	return &ResponseCache{cache: cache}
}

func (c *ResponseCache) Get(key string) (CachedResponse, bool) {
	return c.cache.GetIfPresent(key)
}

func (c *ResponseCache) Set(key string, value CachedResponse) {
	c.cache.Set(key, value)
}

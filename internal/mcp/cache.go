package mcp

import (
	"fmt"

	"github.com/maypok86/otter"

	"github.com/mvp-joe/splitcs/internal/extraction"
)

// DefaultCacheCapacity bounds the number of cached extraction results.
const DefaultCacheCapacity = 256

// ExtractionCache keeps extraction results across tool calls. Keys carry a
// content hash, so an edited file never hits a stale entry.
type ExtractionCache struct {
	cache otter.Cache[string, *extraction.Result]
}

// NewExtractionCache creates a cache holding up to capacity results.
func NewExtractionCache(capacity int) (*ExtractionCache, error) {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c, err := otter.MustBuilder[string, *extraction.Result](capacity).
		CollectStats().
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build extraction cache: %w", err)
	}
	return &ExtractionCache{cache: c}, nil
}

// Get implements splitter.ResultCache.
func (c *ExtractionCache) Get(key string) (*extraction.Result, bool) {
	return c.cache.Get(key)
}

// Set implements splitter.ResultCache.
func (c *ExtractionCache) Set(key string, result *extraction.Result) {
	c.cache.Set(key, result)
}

// Hits returns the number of cache hits so far.
func (c *ExtractionCache) Hits() int64 {
	return c.cache.Stats().Hits()
}

// Close stops the cache's background work.
func (c *ExtractionCache) Close() {
	c.cache.Close()
}

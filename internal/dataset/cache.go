package dataset

import (
	"context"
	"sync"

	"github.com/jaki95/music-explorer/internal/domain"
)

// Cache holds the dataset for the lifetime of the process. Loading is
// expensive relative to request handling, so the result of the first Get is
// reused read-only until Invalidate forces a reload.
type Cache struct {
	mu      sync.RWMutex
	loader  *Loader
	dataset *domain.Dataset
}

// NewCache wraps a loader in a process-lifetime cache.
func NewCache(loader *Loader) *Cache {
	return &Cache{loader: loader}
}

// Get returns the cached dataset, loading it on first use. Concurrent callers
// of a cold cache wait for a single load.
func (c *Cache) Get(ctx context.Context) (*domain.Dataset, error) {
	c.mu.RLock()
	if c.dataset != nil {
		defer c.mu.RUnlock()
		return c.dataset, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dataset != nil {
		return c.dataset, nil
	}

	ds, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.dataset = ds
	return ds, nil
}

// Invalidate discards the cached dataset so the next Get rebuilds it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dataset = nil
}

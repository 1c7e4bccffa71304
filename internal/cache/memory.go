package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/ppiankov/lidspan/internal/model"
)

// Memory implements in-memory prediction caching
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a new memory cache
func NewMemory(defaultTTL time.Duration, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves predictions from the cache
func (c *Memory) Get(key string) ([]model.Prediction, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]model.Prediction), true
	}
	return nil, false
}

// Set stores predictions in the cache with the given TTL
func (c *Memory) Set(key string, preds []model.Prediction, ttl time.Duration) error {
	c.cache.Set(key, preds, ttl)
	return nil
}

// Delete removes predictions from the cache
func (c *Memory) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (c *Memory) Clear() error {
	c.cache.Flush()
	return nil
}

package cache

import (
	"time"

	"github.com/ppiankov/lidspan/internal/model"
)

// Layered reads through a memory cache into a disk cache
type Layered struct {
	memory Cache
	disk   Cache
}

// NewLayered creates a new layered cache
func NewLayered(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *Layered {
	return &Layered{
		memory: NewMemory(memoryTTL, 10*time.Minute),
		disk:   NewDisk(diskDir, diskTTL),
	}
}

// Get checks memory first, then disk, promoting disk hits to memory
func (c *Layered) Get(key string) ([]model.Prediction, bool) {
	if preds, found := c.memory.Get(key); found {
		return preds, true
	}

	if preds, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, preds, 0)
		return preds, true
	}

	return nil, false
}

// Set stores predictions in both layers
func (c *Layered) Set(key string, preds []model.Prediction, ttl time.Duration) error {
	if err := c.memory.Set(key, preds, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, preds, ttl)
}

// Delete removes predictions from both layers
func (c *Layered) Delete(key string) error {
	_ = c.memory.Delete(key)
	_ = c.disk.Delete(key)
	return nil
}

// Clear removes all values from both layers
func (c *Layered) Clear() error {
	_ = c.memory.Clear()
	_ = c.disk.Clear()
	return nil
}

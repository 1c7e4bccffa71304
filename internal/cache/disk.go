package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ppiankov/lidspan/internal/model"
)

// Disk implements persistent prediction caching. Remote classifications are
// the expensive ones; keeping them across runs makes re-segmenting the same
// corpus close to free.
type Disk struct {
	dir string
	ttl time.Duration
}

// NewDisk creates a new disk cache rooted at dir
func NewDisk(dir string, ttl time.Duration) *Disk {
	return &Disk{
		dir: dir,
		ttl: ttl,
	}
}

type diskEntry struct {
	Predictions []model.Prediction `json:"predictions"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

// Get retrieves predictions from the disk cache
func (c *Disk) Get(key string) ([]model.Prediction, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false
	}

	return entry.Predictions, true
}

// Set stores predictions in the disk cache
func (c *Disk) Set(key string, preds []model.Prediction, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	entry := diskEntry{
		Predictions: preds,
		ExpiresAt:   time.Now().Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// Delete removes predictions from the disk cache
func (c *Disk) Delete(key string) error {
	return os.Remove(c.path(key))
}

// Clear removes all cached files
func (c *Disk) Clear() error {
	return os.RemoveAll(c.dir)
}

// path generates the file path for a cache key
func (c *Disk) path(key string) string {
	return filepath.Join(c.dir, key+".cache")
}

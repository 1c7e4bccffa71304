package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ppiankov/lidspan/internal/model"
)

// Cache stores ranked predictions for classifier inputs
type Cache interface {
	Get(key string) ([]model.Prediction, bool)
	Set(key string, preds []model.Prediction, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a cache key from the provider name and classification input
func Key(provider, text string, k int) string {
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("lidspan:v1:%s:%d:%s", provider, k, hex.EncodeToString(hash[:]))
}

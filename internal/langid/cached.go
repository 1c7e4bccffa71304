package langid

import (
	"context"
	"time"

	"github.com/ppiankov/lidspan/internal/cache"
	"github.com/ppiankov/lidspan/internal/model"
)

// Cached memoizes predictions from an underlying provider. One document
// tends to repeat the same short tokens, and for remote providers every
// repeat is a billable round trip.
type Cached struct {
	inner Provider
	store cache.Cache
	ttl   time.Duration
}

// NewCached wraps a provider with a prediction cache
func NewCached(inner Provider, store cache.Cache, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		store: store,
		ttl:   ttl,
	}
}

// Name returns the underlying provider name
func (c *Cached) Name() string {
	return c.inner.Name()
}

// Predict serves from the cache when possible. Failures are never cached,
// and cache writes are best effort: a store that cannot persist the entry
// does not fail a classification that already succeeded.
func (c *Cached) Predict(ctx context.Context, text string, k int) ([]model.Prediction, error) {
	key := cache.Key(c.inner.Name(), text, k)

	if preds, found := c.store.Get(key); found {
		return preds, nil
	}

	preds, err := c.inner.Predict(ctx, text, k)
	if err != nil {
		return nil, err
	}

	_ = c.store.Set(key, preds, c.ttl)
	return preds, nil
}

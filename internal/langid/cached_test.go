package langid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/lidspan/internal/cache"
	"github.com/ppiankov/lidspan/internal/model"
)

// countingProvider counts Predict calls so cache hits are observable
type countingProvider struct {
	calls int
	err   error
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Predict(_ context.Context, text string, _ int) ([]model.Prediction, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return []model.Prediction{{Lang: "en", Prob: 0.9}}, nil
}

func TestCached_ServesFromCache(t *testing.T) {
	inner := &countingProvider{}
	cached := NewCached(inner, cache.NewMemory(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 3; i++ {
		preds, err := cached.Predict(context.Background(), "hello", 1)
		if err != nil {
			t.Fatalf("Predict() error: %v", err)
		}
		if len(preds) != 1 || preds[0].Lang != "en" {
			t.Fatalf("Predict() = %+v, want en", preds)
		}
	}

	if inner.calls != 1 {
		t.Errorf("inner classifier called %d times, want 1", inner.calls)
	}
}

func TestCached_DistinctKeysMiss(t *testing.T) {
	inner := &countingProvider{}
	cached := NewCached(inner, cache.NewMemory(time.Minute, time.Minute), time.Minute)

	_, _ = cached.Predict(context.Background(), "hello", 1)
	_, _ = cached.Predict(context.Background(), "bonjour", 1)
	_, _ = cached.Predict(context.Background(), "hello", 3) // different k

	if inner.calls != 3 {
		t.Errorf("inner classifier called %d times, want 3", inner.calls)
	}
}

func TestCached_ErrorsNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("model offline")}
	cached := NewCached(inner, cache.NewMemory(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := cached.Predict(context.Background(), "hello", 1); err == nil {
			t.Fatal("expected error from inner classifier")
		}
	}

	// Each failing call must reach the classifier again
	if inner.calls != 2 {
		t.Errorf("inner classifier called %d times, want 2", inner.calls)
	}
}

// brokenStore rejects every write, like a disk cache on a full volume
type brokenStore struct{}

func (s *brokenStore) Get(string) ([]model.Prediction, bool) { return nil, false }

func (s *brokenStore) Set(string, []model.Prediction, time.Duration) error {
	return errors.New("no space left on device")
}

func (s *brokenStore) Delete(string) error { return nil }
func (s *brokenStore) Clear() error        { return nil }

func TestCached_StoreWriteFailureDoesNotFailPredict(t *testing.T) {
	inner := &countingProvider{}
	cached := NewCached(inner, &brokenStore{}, time.Minute)

	for i := 0; i < 2; i++ {
		preds, err := cached.Predict(context.Background(), "hello", 1)
		if err != nil {
			t.Fatalf("Predict() error: %v", err)
		}
		if len(preds) != 1 || preds[0].Lang != "en" {
			t.Fatalf("Predict() = %+v, want en", preds)
		}
	}

	// Nothing was persisted, so each call reaches the classifier
	if inner.calls != 2 {
		t.Errorf("inner classifier called %d times, want 2", inner.calls)
	}
}

func TestCached_Name(t *testing.T) {
	cached := NewCached(&countingProvider{}, cache.NewMemory(time.Minute, time.Minute), time.Minute)
	if cached.Name() != "counting" {
		t.Errorf("Name() = %s, want counting", cached.Name())
	}
}

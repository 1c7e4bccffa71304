package langid

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer throttles calls to a remote classifier. Local providers never need
// one; remote providers are paced so a long document of short tokens does
// not trip the endpoint's rate limits.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a pacer allowing requestsPerSecond with the given burst
func NewPacer(requestsPerSecond float64, burst int) *Pacer {
	if burst <= 0 {
		burst = 1
	}
	return &Pacer{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until the next call is allowed or ctx is done
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Allow reports whether a call may proceed right now without waiting
func (p *Pacer) Allow() bool {
	return p.limiter.Allow()
}

package polingo

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures the rate-limited loader.
type RateLimitConfig struct {
	RequestsPerMinute int // Maximum catalog fetches per minute
	BurstSize         int // Maximum burst size (default: same as RPM)
}

// RateLimitedLoader wraps a Loader with a token bucket limiter, keeping a
// shared catalog server from being hammered when many Translators cold-start
// at once.
type RateLimitedLoader struct {
	loader  Loader
	limiter *rate.Limiter
}

// NewRateLimitedLoader creates a loader decorator that throttles fetches.
func NewRateLimitedLoader(loader Loader, cfg RateLimitConfig) *RateLimitedLoader {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	burst := cfg.BurstSize
	if burst <= 0 {
		burst = rpm
	}

	return &RateLimitedLoader{
		loader:  loader,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst),
	}
}

// Load implements Loader, blocking for a token before delegating.
func (l *RateLimitedLoader) Load(ctx context.Context, locale, domain string) (*Catalog, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return l.loader.Load(ctx, locale, domain)
}

// Limiter returns the underlying rate limiter for inspection.
func (l *RateLimitedLoader) Limiter() *rate.Limiter {
	return l.limiter
}

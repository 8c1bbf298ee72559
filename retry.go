package polingo

import (
	"context"
	"errors"
	"time"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry executes a function with exponential backoff retry.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt < cfg.MaxRetries {
			delay := cfg.BaseDelay * time.Duration(1<<attempt)
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// isRetryable reports whether a loader failure is worth retrying.
// Structural failures are permanent; context cancellation ends the attempt.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A payload that failed to parse will not parse on the next fetch.
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return false
	}

	var cfgErr *ConfigurationError
	return !errors.As(err, &cfgErr)
}

// RetryLoader wraps a Loader with exponential backoff retry. Retry policy
// belongs at the loader boundary; the Translator itself never retries.
type RetryLoader struct {
	loader Loader
	config RetryConfig
}

// NewRetryLoader creates a loader decorator that retries transient failures.
func NewRetryLoader(loader Loader, cfg RetryConfig) *RetryLoader {
	return &RetryLoader{
		loader: loader,
		config: cfg,
	}
}

// Load implements Loader with retry logic.
func (l *RetryLoader) Load(ctx context.Context, locale, domain string) (*Catalog, error) {
	return WithRetry(ctx, l.config, func() (*Catalog, error) {
		return l.loader.Load(ctx, locale, domain)
	})
}

package polingo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	}
}

func TestWithRetry_Success(t *testing.T) {
	calls := 0

	result, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("WithRetry failed: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q", result)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWithRetry_TransientError(t *testing.T) {
	calls := 0

	result, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("WithRetry failed: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q", result)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetry_NonRetryableError(t *testing.T) {
	calls := 0
	parseErr := &ParseError{Format: "json", Cause: errors.New("bad payload")}

	_, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		return "", parseErr
	})

	if !errors.Is(err, parseErr) {
		t.Errorf("got %v, want the ParseError", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 for non-retryable error", calls)
	}
}

func TestWithRetry_MaxRetriesExceeded(t *testing.T) {
	calls := 0
	transient := errors.New("still down")

	_, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		return "", transient
	})

	if !errors.Is(err, transient) {
		t.Errorf("got %v, want the last error", err)
	}
	if calls != 4 { // initial attempt + 3 retries
		t.Errorf("calls = %d, want 4", calls)
	}
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(ctx, fastRetryConfig(), func() (string, error) {
		return "", errors.New("never reached after cancel")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("transient"), true},
		{context.Canceled, false},
		{context.DeadlineExceeded, false},
		{&ParseError{Format: "po"}, false},
		{&ConfigurationError{Message: "bad"}, false},
		{&CatalogLoadError{Locale: "es", Domain: "messages", Cause: errors.New("io")}, true},
		{&CatalogLoadError{Locale: "es", Domain: "messages", Cause: &ParseError{Format: "po"}}, false},
	}

	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestRetryLoader(t *testing.T) {
	loader := newMockLoader()
	loader.err = errors.New("down")

	retrying := NewRetryLoader(loader, fastRetryConfig())

	_, err := retrying.Load(context.Background(), "es", "messages")
	if err == nil {
		t.Fatal("Load succeeded against a failing loader")
	}
	if loader.callCount != 4 {
		t.Errorf("loader called %d times, want 4", loader.callCount)
	}

	loader.err = nil
	catalog, err := retrying.Load(context.Background(), "es", "messages")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if catalog.Len() == 0 {
		t.Error("Load returned an empty catalog")
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
	if cfg.BaseDelay <= 0 || cfg.MaxDelay < cfg.BaseDelay {
		t.Errorf("delays out of order: base %v, max %v", cfg.BaseDelay, cfg.MaxDelay)
	}
}

package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/polingo/polingo"
)

// maxCatalogSize caps how much of a response body is read; catalogs beyond
// this are malformed or hostile.
const maxCatalogSize = 16 << 20 // 16 MiB

// HTTP fetches catalogs from a base URL, resolving the same
// "{locale}/{domain}.ext" pattern as the FS loader against it. Wrap it in
// a polingo.RetryLoader or RateLimitedLoader for fetch policy.
type HTTP struct {
	baseURL string
	pattern string
	client  *http.Client
}

// HTTPOption configures an HTTP loader.
type HTTPOption func(*HTTP)

// WithHTTPClient sets the HTTP client. Defaults to a client with a
// 30 second timeout.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(l *HTTP) {
		l.client = client
	}
}

// WithHTTPPattern sets the URL path pattern appended to the base URL.
// Defaults to DefaultPattern.
func WithHTTPPattern(pattern string) HTTPOption {
	return func(l *HTTP) {
		l.pattern = pattern
	}
}

// NewHTTP creates a loader fetching catalogs below baseURL.
func NewHTTP(baseURL string, opts ...HTTPOption) *HTTP {
	l := &HTTP{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		pattern: DefaultPattern,
		client:  &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load implements polingo.Loader.
func (l *HTTP) Load(ctx context.Context, locale, domain string) (*polingo.Catalog, error) {
	path := resolvePath(l.pattern, locale, domain)
	url := l.baseURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	req.Header.Set("User-Agent", polingo.UserAgent())

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalog %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", url, err)
	}

	return Parse(formatOf(path), data)
}

// Verify HTTP implements TranslationLoader
var _ TranslationLoader = (*HTTP)(nil)

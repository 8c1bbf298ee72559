package loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/polingo/polingo"
)

// Static serves catalogs from an in-memory map, keyed by
// "{locale}:{domain}". It is the loader to use in tests and for embedded
// catalogs constructed in code.
type Static struct {
	mu        sync.Mutex
	catalogs  map[string]*polingo.Catalog
	callCount int
	lastKey   string

	// Err, when set, makes every Load fail with it.
	Err error
}

// NewStatic creates an empty static loader.
func NewStatic() *Static {
	return &Static{catalogs: make(map[string]*polingo.Catalog)}
}

// Add registers a catalog for a locale+domain pair.
func (s *Static) Add(locale, domain string, catalog *polingo.Catalog) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalogs[polingo.CacheKey(locale, domain)] = catalog
	return s
}

// Load implements polingo.Loader.
func (s *Static) Load(_ context.Context, locale, domain string) (*polingo.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.callCount++
	s.lastKey = polingo.CacheKey(locale, domain)

	if s.Err != nil {
		return nil, s.Err
	}

	catalog, ok := s.catalogs[s.lastKey]
	if !ok {
		return nil, fmt.Errorf("no catalog registered for %s", s.lastKey)
	}

	return catalog, nil
}

// CallCount returns how many times Load was invoked.
func (s *Static) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// LastKey returns the "{locale}:{domain}" key of the most recent Load.
func (s *Static) LastKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastKey
}

// Reset clears the call statistics.
func (s *Static) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
	s.lastKey = ""
}

// Verify Static implements TranslationLoader
var _ TranslationLoader = (*Static)(nil)

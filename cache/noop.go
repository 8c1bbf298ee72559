package cache

import "github.com/polingo/polingo"

// Noop is a cache that never retains anything. Use it to disable caching
// without branching caller logic: every Get is a miss, every Set a no-op.
type Noop struct{}

// NewNoop creates a no-op cache.
func NewNoop() Noop {
	return Noop{}
}

// Get always reports absent.
func (Noop) Get(string) (*polingo.Catalog, bool) { return nil, false }

// Set discards the catalog.
func (Noop) Set(string, *polingo.Catalog) {}

// Has always reports false.
func (Noop) Has(string) bool { return false }

// Clear does nothing.
func (Noop) Clear() {}

// Verify Noop implements TranslationCache
var _ TranslationCache = Noop{}

package cache

import (
	"sync"
	"time"

	"github.com/polingo/polingo"
)

// DefaultTTL is the entry lifetime used when none is configured.
const DefaultTTL = time.Hour

// ttlEntry holds a cached catalog with its absolute expiry time.
type ttlEntry struct {
	catalog   *polingo.Catalog
	expiresAt time.Time
}

// TTL is a thread-safe in-memory catalog cache whose entries expire a fixed
// duration after insertion. Expired entries are removed lazily when Get or
// Has touches them; Prune removes all of them eagerly.
type TTL struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]ttlEntry
	now     func() time.Time
}

// NewTTL creates a TTL cache. A ttl of 0 or less uses DefaultTTL.
func NewTTL(ttl time.Duration) *TTL {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &TTL{
		ttl:     ttl,
		entries: make(map[string]ttlEntry),
		now:     time.Now,
	}
}

// Get retrieves a catalog, removing it and reporting absent once expired.
func (c *TTL) Get(key string) (*polingo.Catalog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}

	return entry.catalog, true
}

// Set stores a catalog with expiry at insertion time plus the configured TTL.
func (c *TTL) Set(key string, catalog *polingo.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = ttlEntry{
		catalog:   catalog,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Has reports whether key is cached and not expired, lazily evicting it
// when it is.
func (c *TTL) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}

	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return false
	}

	return true
}

// Clear removes all entries.
func (c *TTL) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]ttlEntry)
}

// Prune removes every entry currently past its expiry and returns the
// number removed.
func (c *TTL) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of entries, including ones not yet lazily evicted.
func (c *TTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Verify TTL implements TranslationCache
var _ TranslationCache = (*TTL)(nil)

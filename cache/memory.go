package cache

import (
	"container/list"
	"sync"

	"github.com/polingo/polingo"
)

// memoryEntry is one key/catalog pair in recency order.
type memoryEntry struct {
	key     string
	catalog *polingo.Catalog
}

// Memory is a thread-safe in-memory catalog cache. With maxSize 0 it grows
// without bound in insertion order; with maxSize > 0 it evicts the least
// recently used entry once full, and Get promotes the accessed entry to
// most recently used.
type Memory struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	order   *list.List // front = least recently used
}

// NewMemory creates an in-memory cache holding at most maxSize catalogs.
// A maxSize of 0 means unlimited.
func NewMemory(maxSize int) *Memory {
	if maxSize < 0 {
		maxSize = 0
	}

	return &Memory{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Get retrieves a catalog. When the cache is bounded, the entry is promoted
// to most recently used.
func (c *Memory) Get(key string) (*polingo.Catalog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.maxSize > 0 {
		c.order.MoveToBack(elem)
	}

	return elem.Value.(*memoryEntry).catalog, true
}

// Set stores a catalog. Updating an existing key refreshes its recency
// without changing the size; inserting past maxSize evicts the least
// recently used entry first.
func (c *Memory) Set(key string, catalog *polingo.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*memoryEntry).catalog = catalog
		c.order.MoveToBack(elem)
		return
	}

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		oldest := c.order.Front()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*memoryEntry).key)
		}
	}

	c.entries[key] = c.order.PushBack(&memoryEntry{key: key, catalog: catalog})
}

// Has reports whether key is cached, without touching recency.
func (c *Memory) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

// Clear removes all entries.
func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order = list.New()
}

// Len returns the number of cached catalogs.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Keys returns the cached keys from least to most recently used.
func (c *Memory) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*memoryEntry).key)
	}

	return keys
}

// Entries returns a snapshot of all cached key/catalog pairs.
func (c *Memory) Entries() map[string]*polingo.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[string]*polingo.Catalog, len(c.entries))
	for key, elem := range c.entries {
		snapshot[key] = elem.Value.(*memoryEntry).catalog
	}

	return snapshot
}

// Verify Memory implements TranslationCache
var _ TranslationCache = (*Memory)(nil)

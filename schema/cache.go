package schema

import "sync"

// Cache memoizes fetched schemas keyed by resolved address. Entries live for
// the lifetime of the cache; there is no eviction. It is safe for concurrent
// use so callers may validate documents in parallel against one cache.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]V
}

// NewCache creates an empty cache.
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// GetOrFetch returns the cached value for address, invoking fetch at most
// once per address across the cache's lifetime. Fetch failures are not
// stored; a later request for the same address retries.
func (c *Cache[V]) GetOrFetch(address string, fetch func(address string) (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[address]; ok {
		return v, nil
	}
	v, err := fetch(address)
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries[address] = v
	return v, nil
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

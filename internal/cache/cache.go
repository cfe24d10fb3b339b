package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

type call[V any] struct {
	wg  sync.WaitGroup
	val V
	err error
}

// Cache is a TTL-bounded memo keyed by string. A per-key in-flight guard
// collapses concurrent loads for the same key into a single upstream call.
// Cached values must be treated as immutable by all callers.
type Cache[V any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	entries  map[string]entry[V]
	inflight map[string]*call[V]
	now      func() time.Time
}

// New creates a Cache whose entries expire after ttl. A non-positive ttl
// disables memoization but keeps the in-flight guard.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:      ttl,
		entries:  make(map[string]entry[V]),
		inflight: make(map[string]*call[V]),
		now:      time.Now,
	}
}

// Get returns the cached value for key if present and fresh.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expires) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with a full TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expires: c.now().Add(c.ttl)}
}

// GetOrLoad returns the cached value for key, invoking load on a miss.
// Concurrent callers for the same key share one load; errors are returned
// to every waiter and never cached.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !c.now().After(e.expires) {
		c.mu.Unlock()
		return e.value, nil
	}
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		cl.wg.Wait()
		return cl.val, cl.err
	}
	cl := &call[V]{}
	cl.wg.Add(1)
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.val, cl.err = load()

	c.mu.Lock()
	delete(c.inflight, key)
	if cl.err == nil && c.ttl > 0 {
		c.entries[key] = entry[V]{value: cl.val, expires: c.now().Add(c.ttl)}
	}
	c.mu.Unlock()

	cl.wg.Done()
	return cl.val, cl.err
}

// Invalidate drops the entry for key, if any.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Purge drops every cached entry.
func (c *Cache[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

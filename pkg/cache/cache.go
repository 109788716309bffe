// Package cache provides the in-process memoization store used by the
// read-aggregation endpoints. Entries expire lazily against a TTL chosen
// by each call site; there is no background sweeper and no capacity
// bound.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	payload    interface{}
	insertedAt time.Time
}

// Cache is a concurrency-safe key-value store with per-read TTL expiry.
// Construct one at process start and pass it by handle; payloads are
// returned as stored, so callers must not mutate them.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time

	onHit  func()
	onMiss func()
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// WithClock overrides the cache's time source. Used by tests.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// Instrument registers hit/miss callbacks, invoked outside the lock-free
// hot path guarantees but inside Get.
func (c *Cache) Instrument(onHit, onMiss func()) {
	c.onHit = onHit
	c.onMiss = onMiss
}

// Get returns the payload stored under key if it is younger than ttl.
// An entry at or past its TTL is deleted and reported as a miss.
func (c *Cache) Get(key string, ttl time.Duration) (interface{}, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && c.now().Sub(e.insertedAt) >= ttl {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		if c.onMiss != nil {
			c.onMiss()
		}
		return nil, false
	}
	if c.onHit != nil {
		c.onHit()
	}
	return e.payload, true
}

// Set stores payload under key, stamping it with the current time.
// Last write wins on concurrent sets of the same key.
func (c *Cache) Set(key string, payload interface{}) {
	c.mu.Lock()
	c.entries[key] = entry{payload: payload, insertedAt: c.now()}
	c.mu.Unlock()
}

// Delete removes key if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// MakeKey derives a cache key from a namespace and a parameter set.
// Parameters are canonicalized by JSON-marshaling the map (Go sorts map
// keys when encoding), so two logically identical sets collide to the
// same key regardless of construction order.
func MakeKey(namespace string, params map[string]interface{}) string {
	raw, err := json.Marshal(params)
	if err != nil {
		// Maps of JSON-encodable values cannot fail to marshal; fall
		// back to the bare namespace rather than panic.
		return namespace + ":"
	}
	sum := md5.Sum(raw)
	return namespace + ":" + hex.EncodeToString(sum[:])
}

package service

import (
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

// cacheEntry pairs a cached upstream payload with its capture time.
type cacheEntry struct {
	payload    []byte
	capturedAt time.Time
}

// ResponseCache is a TTL cache for upstream responses. Entries past the TTL
// are ignored by readers; nothing evicts them, so the map grows for the
// process lifetime. Last writer wins on concurrent misses for the same key.
type ResponseCache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	entries map[string]cacheEntry
}

// NewResponseCache creates a cache with the given TTL.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Key builds an order-independent cache key from the resource identifier and
// query parameters. Parameters are sorted by name so equivalent requests
// always collide.
func Key(resource string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(resource)
	b.WriteByte('?')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[name]))
	}
	return b.String()
}

// Get returns the cached payload for key if it is younger than the TTL.
func (c *ResponseCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.capturedAt) >= c.ttl {
		return nil, false
	}
	return e.payload, true
}

// Set stores payload under key, stamping it with the current time.
func (c *ResponseCache) Set(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{payload: payload, capturedAt: c.now()}
}

// Len returns the number of entries, live or expired.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_OrderIndependent(t *testing.T) {
	a := Key("resource", map[string]string{"limit": "1", "filters": "x"})
	b := Key("resource", map[string]string{"filters": "x", "limit": "1"})
	assert.Equal(t, a, b)
}

func TestKey_DistinctParams(t *testing.T) {
	a := Key("resource", map[string]string{"limit": "1"})
	b := Key("resource", map[string]string{"limit": "2"})
	assert.NotEqual(t, a, b)
}

func TestCache_HitWithinTTL(t *testing.T) {
	cache := NewResponseCache(time.Hour)

	cache.Set("k", []byte("payload"))

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), got)
}

func TestCache_MissAfterTTL(t *testing.T) {
	cache := NewResponseCache(time.Hour)

	base := time.Now()
	cache.now = func() time.Time { return base }
	cache.Set("k", []byte("payload"))

	cache.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, ok := cache.Get("k")
	assert.True(t, ok, "entry should be live before the TTL elapses")

	cache.now = func() time.Time { return base.Add(time.Hour) }
	_, ok = cache.Get("k")
	assert.False(t, ok, "entry should be stale once the TTL has elapsed")
}

func TestCache_UnknownKey(t *testing.T) {
	cache := NewResponseCache(time.Hour)

	_, ok := cache.Get("missing")
	assert.False(t, ok)
}

func TestCache_EntriesAccumulate(t *testing.T) {
	cache := NewResponseCache(time.Nanosecond)

	base := time.Now()
	cache.now = func() time.Time { return base }
	cache.Set("a", []byte("1"))
	cache.Set("b", []byte("2"))

	// Expired entries are ignored by readers but never evicted.
	cache.now = func() time.Time { return base.Add(time.Second) }
	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, cache.Len())
}

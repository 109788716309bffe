package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetThenGetWithinTTL(t *testing.T) {
	c := New()
	payload := []string{"a", "b"}

	c.Set("k", payload)

	got, ok := c.Get("k", 30*time.Second)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestCache_ExpiredEntryIsRemoved(t *testing.T) {
	now := time.Now()
	c := New().WithClock(func() time.Time { return now })

	c.Set("k", "v")
	now = now.Add(31 * time.Second)

	_, ok := c.Get("k", 30*time.Second)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should be evicted on read")

	// A fresh set under the same key works cleanly afterwards.
	c.Set("k", "v2")
	got, ok := c.Get("k", 30*time.Second)
	require.True(t, ok)
	assert.Equal(t, "v2", got)
}

func TestCache_TTLBoundaryIsAMiss(t *testing.T) {
	now := time.Now()
	c := New().WithClock(func() time.Time { return now })

	c.Set("k", "v")
	now = now.Add(30 * time.Second)

	_, ok := c.Get("k", 30*time.Second)
	assert.False(t, ok, "age equal to TTL counts as expired")
}

func TestCache_EmptyPayloadIsDistinctFromMiss(t *testing.T) {
	c := New()
	c.Set("k", []string{})

	got, ok := c.Get("k", time.Minute)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestCache_PerCallSiteTTL(t *testing.T) {
	now := time.Now()
	c := New().WithClock(func() time.Time { return now })

	c.Set("short", "v")
	c.Set("long", "v")
	now = now.Add(60 * time.Second)

	_, ok := c.Get("short", 30*time.Second)
	assert.False(t, ok)
	_, ok = c.Get("long", 300*time.Second)
	assert.True(t, ok)
}

func TestCache_Instrument(t *testing.T) {
	c := New()
	var hits, misses int
	c.Instrument(func() { hits++ }, func() { misses++ })

	c.Get("absent", time.Minute)
	c.Set("k", "v")
	c.Get("k", time.Minute)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%10)
			c.Set(key, i)
			c.Get(key, time.Minute)
			c.Delete(key)
		}(i)
	}
	wg.Wait()
}

func TestMakeKey_OrderIndependent(t *testing.T) {
	a := MakeKey("x", map[string]interface{}{"a": 1, "b": 2})
	b := MakeKey("x", map[string]interface{}{"b": 2, "a": 1})
	assert.Equal(t, a, b)
}

func TestMakeKey_DistinguishesValuesAndNamespaces(t *testing.T) {
	base := MakeKey("x", map[string]interface{}{"a": 1})
	assert.NotEqual(t, base, MakeKey("x", map[string]interface{}{"a": 2}))
	assert.NotEqual(t, base, MakeKey("y", map[string]interface{}{"a": 1}))
}

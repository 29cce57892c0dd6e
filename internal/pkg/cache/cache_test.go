package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New()

	c.Set("holidays_2026", []string{"Makar Sankranti"}, time.Minute)

	got, ok := c.Get("holidays_2026")
	assert.True(t, ok)
	assert.Equal(t, []string{"Makar Sankranti"}, got)
}

func TestCacheMiss(t *testing.T) {
	c := New()

	got, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCacheExpiry(t *testing.T) {
	c := New()

	c.Set("k", "v", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should be evicted on read")
}

func TestCacheDelete(t *testing.T) {
	c := New()

	c.Set("k", "v", time.Minute)
	c.Delete("k")

	_, ok := c.Get("k")
	assert.False(t, ok)

	// Deleting again must not panic.
	c.Delete("k")
}

func TestCacheOverwrite(t *testing.T) {
	c := New()

	c.Set("k", 1, time.Minute)
	c.Set("k", 2, time.Minute)

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())
}

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetAs(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("count", 3, DefaultExpiration)
	c.Set("name", "scanner", DefaultExpiration)

	n, ok := GetAs[int](c, "count")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = GetAs[int](c, "name")
	assert.False(t, ok, "wrong type must not be returned")

	_, ok = GetAs[string](c, "missing")
	assert.False(t, ok)

	c.Delete("name")
	_, ok = c.Get("name")
	assert.False(t, ok)
}

func TestExpiration(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("short", true, time.Millisecond)

	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get("short")
	assert.False(t, ok)
}

package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tapresolver/internal/adapters/cache"
)

func TestPathCache_GetSet(t *testing.T) {
	c := cache.New()

	_, ok := c.Get("/keg/taps/acme/components/Header")
	assert.False(t, ok)

	c.Set("/keg/taps/acme/components/Header", "/keg/base/components/Header")

	got, ok := c.Get("/keg/taps/acme/components/Header")
	assert.True(t, ok)
	assert.Equal(t, "/keg/base/components/Header", got)
	assert.Equal(t, 1, c.Len())
}

func TestPathCache_Flush(t *testing.T) {
	c := cache.New()
	c.Set("a", "1")
	c.Set("b", "2")

	c.Flush()

	assert.Zero(t, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestPathCache_ConcurrentAccess(t *testing.T) {
	c := cache.New()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := string(rune('a' + i))
			c.Set(key, key)
			_, _ = c.Get(key)
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, c.Len())
}

func TestNewSessionCache_Independent(t *testing.T) {
	a := cache.NewSessionCache()
	b := cache.NewSessionCache()

	a.Set("/keg/taps/acme/components/Header", "/keg/taps/acme/components/Header.native.js")

	_, ok := b.Get("/keg/taps/acme/components/Header")
	assert.False(t, ok)

	b.Set("x", "y")
	a.Flush()
	assert.Equal(t, 1, b.Len())
}

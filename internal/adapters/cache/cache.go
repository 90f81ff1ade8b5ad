// Package cache implements the per-session resolved path cache.
package cache

import (
	gocache "github.com/patrickmn/go-cache"
	"go.trai.ch/tapresolver/internal/core/ports"
)

// PathCache implements ports.PathCache on an in-memory go-cache store.
// Entries never expire; they are dropped only by Flush.
type PathCache struct {
	store *gocache.Cache
}

// New creates an empty PathCache.
func New() *PathCache {
	return &PathCache{store: gocache.New(gocache.NoExpiration, 0)}
}

// NewSessionCache creates an empty PathCache behind the port. It is the
// ports.PathCacheFactory handed to the resolver engine.
func NewSessionCache() ports.PathCache {
	return New()
}

// Get returns the resolved path cached for candidate.
func (c *PathCache) Get(candidate string) (string, bool) {
	v, ok := c.store.Get(candidate)
	if !ok {
		return "", false
	}
	resolved, ok := v.(string)
	return resolved, ok
}

// Set caches resolved under candidate.
func (c *PathCache) Set(candidate, resolved string) {
	c.store.Set(candidate, resolved, gocache.NoExpiration)
}

// Flush drops every entry.
func (c *PathCache) Flush() {
	c.store.Flush()
}

// Len returns the number of cached entries.
func (c *PathCache) Len() int {
	return c.store.ItemCount()
}

// Package cache holds previously fetched, deduplicated result sets with
// a fixed time-to-live, so repeat queries inside the TTL never hit the
// network.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"datenight/internal/model"
)

const (
	// DefaultTTL matches the upstream guidance of not re-fetching the
	// same query more than every half hour.
	DefaultTTL = 30 * time.Minute

	// defaultCapacity bounds the number of distinct query keys. Call
	// volume is dozens of keys, so this is generous.
	defaultCapacity = 128
)

// Cache is a TTL-bound store of result sets keyed by query string. Keys
// combine the logical query type and its parameters (radius, date
// bounds, category) so differently parameterized queries never collide.
// Safe for concurrent use.
type Cache struct {
	lru *expirable.LRU[string, []model.Event]
}

// New creates a cache with the given TTL. A non-positive TTL falls back
// to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		lru: expirable.NewLRU[string, []model.Event](defaultCapacity, nil, ttl),
	}
}

// Get returns the cached result set for key, or false if the key is
// absent or its entry has aged past the TTL.
func (c *Cache) Get(key string) ([]model.Event, bool) {
	return c.lru.Get(key)
}

// Put stores a result set under key, restarting its TTL.
func (c *Cache) Put(key string, events []model.Event) {
	c.lru.Add(key, events)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.lru.Purge()
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

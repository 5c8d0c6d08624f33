// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package selector

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/domdist/internal/element"
)

// DefaultCacheSize is the number of distinct tokens a Cache keeps by default.
const DefaultCacheSize = 4096

// Cache memoizes parsed tokens. Case files tend to repeat the same handful of
// selectors many times, so parsing goes through the cache. It is safe for
// concurrent use.
type Cache struct {
	entries *lru.Cache[string, element.Element]
	hits    atomic.Int64
	misses  atomic.Int64
}

// CacheStats is a snapshot of cache activity.
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// NewCache creates a cache holding up to size tokens. A non-positive size
// selects DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, element.Element](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create selector cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Parse behaves like the package-level Parse. Failed tokens are not cached.
func (c *Cache) Parse(token string) (element.Element, error) {
	e, _, err := c.lookup(token)
	return e, err
}

// ParseDOM behaves like the package-level ParseDOM, parsing tokens through the cache.
func (c *Cache) ParseDOM(line string) (element.DOM, error) {
	return parseDOM(line, c.Parse)
}

// Track returns a Tracker that shares the cache's entries but also counts its
// own lookups, so one caller's activity can be told apart from another's.
func (c *Cache) Track() *Tracker {
	return &Tracker{cache: c}
}

func (c *Cache) lookup(token string) (element.Element, bool, error) {
	if e, ok := c.entries.Get(token); ok {
		c.hits.Add(1)
		return e, true, nil
	}
	c.misses.Add(1)

	e, err := Parse(token)
	if err != nil {
		return element.Element{}, false, err
	}
	c.entries.Add(token, e)
	return e, false, nil
}

// Tracker parses through a Cache and counts the hits and misses it caused.
// It is safe for concurrent use.
type Tracker struct {
	cache  *Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// Parse behaves like Cache.Parse.
func (t *Tracker) Parse(token string) (element.Element, error) {
	e, hit, err := t.cache.lookup(token)
	if hit {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}
	return e, err
}

// ParseDOM behaves like Cache.ParseDOM.
func (t *Tracker) ParseDOM(line string) (element.DOM, error) {
	return parseDOM(line, t.Parse)
}

// Stats returns the lookups made through t. Size is the shared cache's size.
func (t *Tracker) Stats() CacheStats {
	return CacheStats{
		Hits:   t.hits.Load(),
		Misses: t.misses.Load(),
		Size:   t.cache.entries.Len(),
	}
}

// Stats returns the current hit, miss and size counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.entries.Len(),
	}
}

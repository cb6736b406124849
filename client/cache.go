package client

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// EntityKind names a family of cached list results.
type EntityKind string

const (
	// KindDecks is the deck list; its id is always 0.
	KindDecks EntityKind = "decks"
	// KindCards is the card list of one deck, keyed by deck id.
	KindCards EntityKind = "cards"
	// KindSessions is the session log of one deck, keyed by deck id.
	KindSessions EntityKind = "sessions"
)

type cacheKey struct {
	kind EntityKind
	id   uint
}

func (k cacheKey) String() string {
	return string(k.kind) + "/" + strconv.FormatUint(uint64(k.id), 10)
}

// Cache memoizes list reads by entity kind and id. Entries live until they
// are invalidated; there is no expiry. Concurrent misses on the same key
// share one fetch. A nil *Cache disables caching.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]any
	// gen is bumped on every invalidation so that a fetch started before
	// the invalidation does not store its stale result.
	gen    map[cacheKey]uint64
	flight singleflight.Group
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[cacheKey]any),
		gen:     make(map[cacheKey]uint64),
	}
}

// Invalidate drops the entry for (kind, id).
func (c *Cache) Invalidate(kind EntityKind, id uint) {
	if c == nil {
		return
	}
	key := cacheKey{kind, id}
	c.mu.Lock()
	delete(c.entries, key)
	c.gen[key]++
	c.mu.Unlock()
	c.flight.Forget(key.String())
}

// Clear drops every entry.
func (c *Cache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	for key := range c.entries {
		c.gen[key]++
	}
	clear(c.entries)
	c.mu.Unlock()
}

// Cached reports whether (kind, id) currently holds a value.
func (c *Cache) Cached(kind EntityKind, id uint) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[cacheKey{kind, id}]
	return ok
}

func (c *Cache) lookup(key cacheKey) (any, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, c.gen[key], ok
}

func (c *Cache) store(key cacheKey, gen uint64, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen[key] == gen {
		c.entries[key] = v
	}
}

// cached returns the memoized slice for (kind, id) or calls fetch and
// memoizes its result. Callers get their own copy of the slice.
func cached[T any](c *Cache, kind EntityKind, id uint, fetch func() ([]T, error)) ([]T, error) {
	if c == nil {
		return fetch()
	}
	key := cacheKey{kind, id}
	if v, _, ok := c.lookup(key); ok {
		return clone(v.([]T)), nil
	}

	v, err, _ := c.flight.Do(key.String(), func() (any, error) {
		_, gen, _ := c.lookup(key)
		items, err := fetch()
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		c.store(key, gen, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.([]T)), nil
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

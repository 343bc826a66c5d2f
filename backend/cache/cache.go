// ABOUTME: In-memory cache with TTL-based expiration for evaluation results
// ABOUTME: Thread-safe cache using sync.Map, with singleflight to collapse duplicate work

package cache

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	data      interface{}
	expiresAt time.Time
}

// Stats reports cache effectiveness counters
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

type Cache struct {
	store sync.Map
	ttl   time.Duration
	group singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64

	stop     chan struct{}
	stopOnce sync.Once
}

func New(ttl time.Duration) *Cache {
	c := &Cache{
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

func (c *Cache) Get(key string) (interface{}, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		c.misses.Add(1)
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		c.misses.Add(1)
		slog.Debug("Cache expired", "key", key)
		return nil, false
	}

	c.hits.Add(1)
	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	e := entry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
	c.store.Store(key, e)
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

// GetOrCompute returns the cached value for key, or runs compute once for all
// concurrent callers asking for the same key and caches its result. Errors are
// not cached. The bool reports whether the value came from the cache.
func (c *Cache) GetOrCompute(key string, compute func() (interface{}, error)) (interface{}, bool, error) {
	if val, ok := c.Get(key); ok {
		return val, true, nil
	}

	val, err, _ := c.group.Do(key, func() (interface{}, error) {
		v, err := compute()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		return nil, false, err
	}
	return val, false, nil
}

func (c *Cache) Clear(key string) {
	c.store.Delete(key)
}

// Stats returns hit/miss counters and the number of stored entries
func (c *Cache) Stats() Stats {
	n := 0
	c.store.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: n,
	}
}

// Close stops the background cleanup goroutine
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) startCleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.store.Range(func(key, val interface{}) bool {
				e := val.(entry)
				if now.After(e.expiresAt) {
					c.store.Delete(key)
				}
				return true
			})
		}
	}
}

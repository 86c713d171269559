package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/dustin/go-humanize"
)

// DefaultTTL applies to entries stored with Set.
const DefaultTTL = time.Hour

// Cache is a named, cost-bounded in-memory cache.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
}

// New creates a cache bounded by maxCost, where costFunc prices each value.
func New[T any](name string, maxCost int64, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5, // keys tracked for admission frequency
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		name: name,
	}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value with DefaultTTL. A cost of 0 defers to the cost function.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, DefaultTTL)
}

func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// ItemCount returns the number of entries currently held.
func (c *Cache[T]) ItemCount() int64 {
	m := c.impl.Metrics
	return int64(m.KeysAdded() - m.KeysEvicted())
}

// Stats summarizes cache activity for the health endpoint.
func (c *Cache[T]) Stats() map[string]interface{} {
	m := c.impl.Metrics

	costUsed := m.CostAdded() - m.CostEvicted()
	requests := m.Hits() + m.Misses()
	hitRate := 0.0
	if requests > 0 {
		hitRate = float64(m.Hits()) / float64(requests) * 100
	}

	return map[string]interface{}{
		"name":           c.name,
		"hits":           m.Hits(),
		"misses":         m.Misses(),
		"sets":           m.KeysAdded(),
		"evictions":      m.KeysEvicted(),
		"total_requests": requests,
		"hit_rate":       hitRate,
		"sets_dropped":   m.SetsDropped(),
		"sets_rejected":  m.SetsRejected(),
		"cost_used":      costUsed,
		"memory_used":    humanize.Bytes(costUsed),
		"current_items":  c.ItemCount(),
	}
}

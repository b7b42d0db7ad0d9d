package partition

import (
	"sync"
)

// Cache stores threshold sets by partition count.
type Cache interface {
	Get(groups int) ([]Partition, bool)
	Put(groups int, partitions []Partition)
}

// MemoryCache is a thread-safe, never-evicting Cache that lives as long as
// the value holding it.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[int][]Partition
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[int][]Partition),
	}
}

// Get returns a copy of the cached set for groups.
func (c *MemoryCache) Get(groups int) ([]Partition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[groups]
	if !ok {
		return nil, false
	}
	return clonePartitions(entry), true
}

// Put stores a copy of partitions. Writes for the same key carry identical
// values, so the last write wins.
func (c *MemoryCache) Put(groups int, partitions []Partition) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[groups] = clonePartitions(partitions)
}

// Len returns the number of cached sets.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// clonePartitions copies the slice and every Min string it points to, so no
// pointer is shared between a cache entry and its callers.
func clonePartitions(in []Partition) []Partition {
	out := make([]Partition, len(in))
	for i, p := range in {
		out[i] = Partition{Max: p.Max}
		if p.Min != nil {
			lower := *p.Min
			out[i].Min = &lower
		}
	}
	return out
}

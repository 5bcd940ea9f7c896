package pipeline

import (
	"maps"
	"sync"

	"github.com/matzehuels/forcelayout/pkg/force"
)

// Attributes are the cached display attributes of one element.
type Attributes struct {
	Position force.Point
	Width    float64
	Height   float64
}

// AttributeCache holds the last known attributes of each element, keyed by
// element index. It is owned by the caller of a Runner and is safe for
// concurrent use.
type AttributeCache struct {
	mu      sync.RWMutex
	entries map[int]Attributes
}

// NewAttributeCache creates an empty cache.
func NewAttributeCache() *AttributeCache {
	return &AttributeCache{entries: make(map[int]Attributes)}
}

// Get returns the attributes cached for key.
func (c *AttributeCache) Get(key int) (Attributes, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.entries[key]
	return a, ok
}

// Put stores attributes for key.
func (c *AttributeCache) Put(key int, a Attributes) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = a
}

// SetPosition updates only the position of an existing entry, creating it
// if needed.
func (c *AttributeCache) SetPosition(key int, p force.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a := c.entries[key]
	a.Position = p
	c.entries[key] = a
}

// Evict drops every entry whose key is >= count and returns how many were
// removed. Call it when the element list shrinks.
func (c *AttributeCache) Evict(count int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key := range c.entries {
		if key >= count || key < 0 {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of cached entries.
func (c *AttributeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Snapshot returns a copy of all entries.
func (c *AttributeCache) Snapshot() map[int]Attributes {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.entries)
}

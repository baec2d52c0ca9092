package audio

import "sync"

// MaxHandles bounds the number of live playback voices a session retains.
const MaxHandles = 50

// Cache holds playback handles in insertion order so their voices keep
// sounding, bounded so a long session cannot leak them. Eviction is strict
// FIFO: the oldest voice is released first, and re-playing a note never
// promotes anything because every play is a fresh handle.
type Cache struct {
	mu      sync.Mutex
	max     int
	handles []Handle
}

// NewCache creates an empty cache bounded at max handles.
func NewCache(max int) *Cache {
	if max < 1 {
		max = MaxHandles
	}
	return &Cache{max: max}
}

// Insert appends a handle, first releasing and dropping the oldest entry if
// the cache is full. The bound is never exceeded, even transiently.
func (c *Cache) Insert(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.handles) >= c.max {
		oldest := c.handles[0]
		copy(c.handles, c.handles[1:])
		c.handles = c.handles[:len(c.handles)-1]
		oldest.Release()
	}
	c.handles = append(c.handles, h)
}

// Len returns the number of live handles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

// Close releases every handle, oldest first, and empties the cache.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, h := range c.handles {
		h.Release()
	}
	c.handles = nil
}

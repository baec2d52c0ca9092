package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubHandle records the order its Release is called in
type stubHandle struct {
	id       int
	released *[]int
}

func (h *stubHandle) Release() {
	*h.released = append(*h.released, h.id)
}

func TestCacheEvictsOldestFirst(t *testing.T) {
	assert := assert.New(t)

	const max = 5
	const extra = 3

	var released []int
	cache := NewCache(max)

	for i := 0; i < max+extra; i++ {
		cache.Insert(&stubHandle{id: i, released: &released})
		assert.LessOrEqual(cache.Len(), max, "bound exceeded after insert %d", i)
	}

	assert.Equal(max, cache.Len())
	assert.Equal([]int{0, 1, 2}, released, "oldest handles evicted in insertion order")

	// Closing releases the survivors, still oldest first
	cache.Close()
	assert.Equal(0, cache.Len())
	assert.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7}, released)
}

func TestCacheBelowCapacityReleasesNothing(t *testing.T) {
	assert := assert.New(t)

	var released []int
	cache := NewCache(10)
	for i := 0; i < 10; i++ {
		cache.Insert(&stubHandle{id: i, released: &released})
	}

	assert.Equal(10, cache.Len())
	assert.Empty(released)
}

func TestCacheDefaultsCapacity(t *testing.T) {
	assert := assert.New(t)

	var released []int
	cache := NewCache(0)
	for i := 0; i < MaxHandles+1; i++ {
		cache.Insert(&stubHandle{id: i, released: &released})
	}

	assert.Equal(MaxHandles, cache.Len())
	assert.Equal([]int{0}, released)
}

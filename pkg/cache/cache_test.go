package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_InsertAndRetrieve(t *testing.T) {
	cache := NewCache[[]byte](10)
	require.NoError(t, cache.Insert("A", []byte("a"), 1))
	require.NoError(t, cache.Insert("B", []byte("b"), 2))

	assert.Equal(t, 3, cache.GetWeight())
	assert.Equal(t, 10, cache.GetBudget())

	value, ok := cache.Retrieve("B")
	require.True(t, ok)
	assert.Equal(t, []byte("b"), value)

	value, ok = cache.Retrieve("missing")
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestCache_DuplicateRejected(t *testing.T) {
	cache := NewCache[int](2)
	require.NoError(t, cache.Insert("dupe", 1, 1))
	assert.Equal(t, ErrKeyExists, cache.Insert("dupe", 2, 1))

	value, ok := cache.Retrieve("dupe")
	require.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Equal(t, 1, cache.GetWeight())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache[string](2)
	cache.SetVerbose(true)

	require.NoError(t, cache.Insert("evicted", "x", 1))
	require.NoError(t, cache.Insert("A", "a", 1))
	require.NoError(t, cache.Insert("B", "b", 1))

	_, ok := cache.Retrieve("evicted")
	assert.False(t, ok)
	_, ok = cache.Retrieve("A")
	assert.True(t, ok)
	_, ok = cache.Retrieve("B")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.GetWeight())
}

func TestCache_EvictsLeastRecentlyRetrieved(t *testing.T) {
	cache := NewCache[string](2)
	require.NoError(t, cache.Insert("A", "a", 1))
	require.NoError(t, cache.Insert("B", "b", 1))

	// "B" becomes the least recently used entry
	_, ok := cache.Retrieve("A")
	require.True(t, ok)
	require.NoError(t, cache.Insert("C", "c", 1))

	_, ok = cache.Retrieve("B")
	assert.False(t, ok)
	_, ok = cache.Retrieve("A")
	assert.True(t, ok)
	_, ok = cache.Retrieve("C")
	assert.True(t, ok)
}

func TestCache_HeavyEntryEvictsSeveral(t *testing.T) {
	cache := NewCache[string](3)
	require.NoError(t, cache.Insert("A", "a", 1))
	require.NoError(t, cache.Insert("B", "b", 1))
	require.NoError(t, cache.Insert("C", "c", 1))
	require.NoError(t, cache.Insert("D", "d", 2))

	_, ok := cache.Retrieve("A")
	assert.False(t, ok)
	_, ok = cache.Retrieve("B")
	assert.False(t, ok)
	_, ok = cache.Retrieve("C")
	assert.True(t, ok)
	assert.Equal(t, 3, cache.GetWeight())
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache[string](1)
	require.NoError(t, cache.Insert("cleared", "x", 1))
	cache.Clear()

	_, ok := cache.Retrieve("cleared")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.GetWeight())

	require.NoError(t, cache.Insert("cleared", "y", 1))
}

func TestCache_Concurrent(t *testing.T) {
	cache := NewCache[int](64)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("%d", j%32)
				if _, ok := cache.Retrieve(key); !ok {
					_ = cache.Insert(key, j, 1)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.GetWeight(), 64)
}

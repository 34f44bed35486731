package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	c := New[string](4)
	c.Put(1, "one")
	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)
}

func TestGetMissReportsFalse(t *testing.T) {
	c := New[string](4)
	_, ok := c.Get(99)
	require.False(t, ok)
}

func TestPutExistingKeyIsNoOp(t *testing.T) {
	c := New[string](4)
	c.Put(1, "one")
	returned := c.Put(1, "two")
	require.Equal(t, "one", returned)
	v, _ := c.Get(1)
	require.Equal(t, "one", v)
}

func TestEvictionAtCapacity(t *testing.T) {
	c := New[int](2)
	c.Put(1, 100)
	c.Put(2, 200)
	c.Put(3, 300) // evicts 1, the only unreferenced entry (neither 1 nor 2 was Get'd)
	require.LessOrEqual(t, c.Len(), 2)

	_, ok1 := c.Get(1)
	_, ok2 := c.Get(2)
	_, ok3 := c.Get(3)
	require.False(t, ok1)
	require.True(t, ok2)
	require.True(t, ok3)
}

func TestSecondChanceProtectsReferencedEntry(t *testing.T) {
	c := New[int](2)
	c.Put(1, 100)
	c.Put(2, 200)
	_, _ = c.Get(1) // mark 1 referenced; it survives the next eviction once

	c.Put(3, 300) // 2 is unreferenced and at the back: evicted instead of 1
	_, ok1 := c.Get(1)
	_, ok2 := c.Get(2)
	require.True(t, ok1)
	require.False(t, ok2)
}

func TestStatsCountsHitsAndMisses(t *testing.T) {
	c := New[int](4)
	c.Put(1, 100)
	_, _ = c.Get(1)
	_, _ = c.Get(2)

	hits, misses := c.Stats()
	require.Equal(t, int64(1), hits)
	require.Equal(t, int64(1), misses)
}

func TestConcurrentGetPut(t *testing.T) {
	c := New[int](64)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Put(Key(i), i)
			c.Get(Key(i))
		}(i)
	}
	wg.Wait()
	require.LessOrEqual(t, c.Len(), 64)
}

func TestCapacityZeroTreatedAsOne(t *testing.T) {
	c := New[int](0)
	c.Put(1, 1)
	c.Put(2, 2)
	require.Equal(t, 1, c.Len())
}

package schema

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetOrFetchMemoizes verifies the underlying fetch runs at most once per
// address.
func TestGetOrFetchMemoizes(t *testing.T) {
	cache := NewCache[string]()
	var calls int

	fetch := func(addr string) (string, error) {
		calls++
		return "schema for " + addr, nil
	}

	first, err := cache.GetOrFetch("https://cdn.staclint.com/v1.0.0/item.json", fetch)
	require.NoError(t, err)
	second, err := cache.GetOrFetch("https://cdn.staclint.com/v1.0.0/item.json", fetch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.Len())
}

func TestGetOrFetchDistinctAddresses(t *testing.T) {
	cache := NewCache[string]()
	var calls int

	fetch := func(addr string) (string, error) {
		calls++
		return addr, nil
	}

	_, err := cache.GetOrFetch("a", fetch)
	require.NoError(t, err)
	_, err = cache.GetOrFetch("b", fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, cache.Len())
}

// TestGetOrFetchErrorNotCached verifies failures are retried rather than
// memoized.
func TestGetOrFetchErrorNotCached(t *testing.T) {
	cache := NewCache[string]()
	calls := 0

	_, err := cache.GetOrFetch("a", func(string) (string, error) {
		calls++
		return "", errors.New("network down")
	})
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())

	got, err := cache.GetOrFetch("a", func(string) (string, error) {
		calls++
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
	assert.Equal(t, 2, calls)
}

// TestGetOrFetchConcurrent verifies the cache is safe for concurrent fills
// and still performs one fetch per address.
func TestGetOrFetchConcurrent(t *testing.T) {
	cache := NewCache[int]()
	var calls atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.GetOrFetch("shared", func(string) (int, error) {
				calls.Add(1)
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
}

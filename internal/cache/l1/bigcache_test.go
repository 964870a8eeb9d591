package l1

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-query-cache/internal/models"
)

func newTestCache(t *testing.T) *BigCache {
	t.Helper()
	cache, err := NewBigCache(10, time.Hour, zap.NewNop())
	require.NoError(t, err)
	bc := cache.(*BigCache)
	t.Cleanup(func() { _ = bc.Close() })
	return bc
}

func TestNewBigCache(t *testing.T) {
	logger := zap.NewNop()

	cache, err := NewBigCache(10, 0, logger)
	require.NoError(t, err)
	defer cache.(*BigCache).Close()

	bigCache, ok := cache.(*BigCache)
	assert.True(t, ok)
	assert.NotNil(t, bigCache.cache)
	assert.Equal(t, logger, bigCache.logger)
	assert.NotNil(t, bigCache.metricsScheduler)
}

func TestBigCache_Set_And_Get(t *testing.T) {
	cache := newTestCache(t)

	testData := []byte(`{"content":"hello"}`)
	cache.Set("test-key", testData, time.Minute)

	result, found := cache.Get("test-key")

	assert.True(t, found)
	require.NotNil(t, result)
	assert.False(t, result.IsExpired())
	assert.Equal(t, testData, result.Data)
	assert.Equal(t, 1, cache.Len())
}

func TestBigCache_Get_NotFound(t *testing.T) {
	cache := newTestCache(t)

	result, found := cache.Get("non-existent-key")

	assert.False(t, found)
	assert.Nil(t, result)
}

func TestBigCache_Get_Expired(t *testing.T) {
	cache := newTestCache(t)

	// Manually create an expired entry
	now := time.Now().Unix()
	entry := models.CacheEntry{
		Data:      []byte("test-value"),
		CreatedAt: now - 300,
		ExpiresAt: now - 100,
	}
	entryJSON, _ := json.Marshal(entry)
	require.NoError(t, cache.cache.Set("test-key", entryJSON))

	result, found := cache.Get("test-key")

	assert.False(t, found)
	assert.Nil(t, result)
	assert.Equal(t, 0, cache.Len())
}

func TestBigCache_Get_Corrupted(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.cache.Set("bad-key", []byte("not json")))

	result, found := cache.Get("bad-key")

	assert.False(t, found)
	assert.Nil(t, result)
	assert.Equal(t, 0, cache.Len())
}

func TestBigCache_Set_NoExpiry(t *testing.T) {
	cache := newTestCache(t)

	cache.Set("forever", []byte("v"), 0)

	result, found := cache.Get("forever")
	assert.True(t, found)
	assert.Zero(t, result.ExpiresAt)
}

func TestBigCache_Delete(t *testing.T) {
	cache := newTestCache(t)

	cache.Set("test-key", []byte("test-value"), time.Minute)
	_, found := cache.Get("test-key")
	assert.True(t, found)

	cache.Delete("test-key")

	result, found := cache.Get("test-key")
	assert.False(t, found)
	assert.Nil(t, result)

	// Delete non-existent key (should not panic)
	cache.Delete("non-existent-key")
}

func TestBigCache_Multiple_Keys(t *testing.T) {
	cache := newTestCache(t)

	for i := 0; i < 10; i++ {
		cache.Set(fmt.Sprintf("key-%d", i), []byte(fmt.Sprintf("value-%d", i)), time.Minute)
	}

	for i := 0; i < 10; i++ {
		result, found := cache.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, found)
		require.NotNil(t, result)
		assert.Equal(t, []byte(fmt.Sprintf("value-%d", i)), result.Data)
	}

	capacity, used := cache.GetStats()
	assert.Greater(t, capacity, int64(0))
	assert.Equal(t, int64(10), used)
}

func TestBigCache_Concurrent_Access(t *testing.T) {
	cache := newTestCache(t)

	numGoroutines := 10
	numOperations := 100
	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			for j := 0; j < numOperations; j++ {
				key := fmt.Sprintf("concurrent-key-%d-%d", id, j)
				value := []byte(fmt.Sprintf("value-%d-%d", id, j))

				cache.Set(key, value, time.Minute)

				result, found := cache.Get(key)
				if found {
					assert.NotNil(t, result)
					assert.Equal(t, value, result.Data)
				}

				cache.Delete(key)
			}
			done <- true
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		<-done
	}
}

func TestBigCache_Edge_Cases(t *testing.T) {
	cache := newTestCache(t)

	t.Run("empty key", func(t *testing.T) {
		cache.Set("", []byte("value"), time.Minute)
		result, found := cache.Get("")
		assert.True(t, found)
		assert.Equal(t, []byte("value"), result.Data)
	})

	t.Run("empty value", func(t *testing.T) {
		cache.Set("empty-value-key", []byte(""), time.Minute)
		result, found := cache.Get("empty-value-key")
		assert.True(t, found)
		assert.Equal(t, []byte(""), result.Data)
	})

	t.Run("nil value", func(t *testing.T) {
		cache.Set("nil-value-key", nil, time.Minute)
		result, found := cache.Get("nil-value-key")
		assert.True(t, found)
		assert.Nil(t, result.Data)
	})
}

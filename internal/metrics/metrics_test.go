package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestQueryMetrics(t *testing.T) {
	t.Run("RecordQueryRequest", func(t *testing.T) {
		before := testutil.ToFloat64(QueryRequests.WithLabelValues("test-items", "fresh"))
		RecordQueryRequest("test-items", "fresh")
		assert.Equal(t, before+1, testutil.ToFloat64(QueryRequests.WithLabelValues("test-items", "fresh")))
	})

	t.Run("RecordQueryFetch", func(t *testing.T) {
		before := testutil.ToFloat64(QueryFetches.WithLabelValues("test-items", "error"))
		RecordQueryFetch("test-items", "error", 3, 1500*time.Millisecond)
		assert.Equal(t, before+1, testutil.ToFloat64(QueryFetches.WithLabelValues("test-items", "error")))
	})

	t.Run("RecordQueryRetry", func(t *testing.T) {
		before := testutil.ToFloat64(QueryRetries.WithLabelValues("test-items"))
		RecordQueryRetry("test-items")
		RecordQueryRetry("test-items")
		assert.Equal(t, before+2, testutil.ToFloat64(QueryRetries.WithLabelValues("test-items")))
	})

	t.Run("RecordQueryEvictions", func(t *testing.T) {
		before := testutil.ToFloat64(QueryEvictions.WithLabelValues("test-items"))
		RecordQueryEvictions("test-items", 4)
		assert.Equal(t, before+4, testutil.ToFloat64(QueryEvictions.WithLabelValues("test-items")))
	})

	t.Run("UpdateQueryEntries", func(t *testing.T) {
		UpdateQueryEntries("test-items", 7)
		assert.Equal(t, float64(7), testutil.ToFloat64(QueryEntries.WithLabelValues("test-items")))
	})
}

func TestCacheMetrics(t *testing.T) {
	t.Run("RecordCacheHit", func(t *testing.T) {
		before := testutil.ToFloat64(CacheHits.WithLabelValues("l2"))
		RecordCacheHit("l2")
		assert.Equal(t, before+1, testutil.ToFloat64(CacheHits.WithLabelValues("l2")))
	})

	t.Run("RecordCacheMiss", func(t *testing.T) {
		before := testutil.ToFloat64(CacheMisses)
		RecordCacheMiss()
		assert.Equal(t, before+1, testutil.ToFloat64(CacheMisses))
	})

	t.Run("RecordCacheError", func(t *testing.T) {
		before := testutil.ToFloat64(CacheErrors.WithLabelValues("l1", "encode"))
		RecordCacheError("l1", "encode")
		assert.Equal(t, before+1, testutil.ToFloat64(CacheErrors.WithLabelValues("l1", "encode")))
	})

	t.Run("UpdateL1CacheCapacity", func(t *testing.T) {
		UpdateL1CacheCapacity(1000000, 500000)
		assert.Equal(t, float64(1000000), testutil.ToFloat64(CacheCapacity.WithLabelValues("l1")))
		assert.Equal(t, float64(500000), testutil.ToFloat64(CacheUsed.WithLabelValues("l1")))
	})

	t.Run("UpdateCacheKeys", func(t *testing.T) {
		UpdateCacheKeys("l1", 1000)
		assert.Equal(t, float64(1000), testutil.ToFloat64(CacheKeys.WithLabelValues("l1")))
	})

	t.Run("TimeCacheOperation", func(t *testing.T) {
		// This should not panic
		timer := TimeCacheOperation("get", "l1")
		timer()
	})
}

func TestDraftAndHTTPMetrics(t *testing.T) {
	before := testutil.ToFloat64(DraftOperations.WithLabelValues("save", "error"))
	RecordDraftOperation("save", errors.New("boom"))
	RecordDraftOperation("save", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(DraftOperations.WithLabelValues("save", "error")))

	beforeHTTP := testutil.ToFloat64(HTTPRequests.WithLabelValues("/health", "GET", "200"))
	RecordHTTPRequest("/health", "GET", 200, time.Millisecond)
	assert.Equal(t, beforeHTTP+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("/health", "GET", "200")))
}

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request cache lifecycle
	QueryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_requests_total",
			Help: "Total number of query requests by outcome",
		},
		[]string{"client", "outcome"}, // outcome: fresh, stale, miss, coalesced
	)

	QueryFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_fetches_total",
			Help: "Total number of settled fetches",
		},
		[]string{"client", "result"},
	)

	QueryFetchAttempts = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "query_fetch_attempts",
			Help:    "Attempts used per settled fetch",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
		[]string{"client"},
	)

	QueryFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "query_fetch_duration_seconds",
			Help:    "Duration of fetches including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"client", "result"},
	)

	QueryRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_retries_total",
			Help: "Total number of automatic retries",
		},
		[]string{"client"},
	)

	QueryEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_evictions_total",
			Help: "Total number of evicted query entries",
		},
		[]string{"client"},
	)

	QueryEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "query_entries",
			Help: "Number of entries held by a query client",
		},
		[]string{"client"},
	)

	// Draft tiers
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of draft tier hits",
		},
		[]string{"level"},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of reads that missed every draft tier",
		},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_errors_total",
			Help: "Total number of draft tier errors",
		},
		[]string{"level", "kind"}, // kind: encode, decode, upstream
	)

	CacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_operation_duration_seconds",
			Help:    "Duration of draft tier operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "level"},
	)

	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity_bytes",
			Help: "L1 cache capacity in bytes",
		},
		[]string{"level"}, // only "l1"
	)

	CacheUsed = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_used_bytes",
			Help: "L1 cache used space in bytes",
		},
		[]string{"level"}, // only "l1"
	)

	CacheKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_keys",
			Help: "Number of keys per draft tier",
		},
		[]string{"level"},
	)

	DraftOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draft_operations_total",
			Help: "Total number of draft store operations",
		},
		[]string{"operation", "result"},
	)

	// HTTP surface
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// RecordQueryRequest records a request cache lookup
func RecordQueryRequest(client, outcome string) {
	QueryRequests.WithLabelValues(client, outcome).Inc()
}

// RecordQueryFetch records a settled fetch with its attempts and duration
func RecordQueryFetch(client, result string, attempts int, duration time.Duration) {
	QueryFetches.WithLabelValues(client, result).Inc()
	QueryFetchAttempts.WithLabelValues(client).Observe(float64(attempts))
	QueryFetchDuration.WithLabelValues(client, result).Observe(duration.Seconds())
}

// RecordQueryRetry records an automatic retry
func RecordQueryRetry(client string) {
	QueryRetries.WithLabelValues(client).Inc()
}

// RecordQueryEvictions records evicted entries
func RecordQueryEvictions(client string, count int) {
	QueryEvictions.WithLabelValues(client).Add(float64(count))
}

// UpdateQueryEntries sets the current entry count of a client
func UpdateQueryEntries(client string, count int) {
	QueryEntries.WithLabelValues(client).Set(float64(count))
}

// RecordCacheHit records a draft tier hit
func RecordCacheHit(level string) {
	CacheHits.WithLabelValues(level).Inc()
}

// RecordCacheMiss records a read that missed every tier
func RecordCacheMiss() {
	CacheMisses.Inc()
}

// RecordCacheError records a cache error with level and kind
func RecordCacheError(level, kind string) {
	CacheErrors.WithLabelValues(level, kind).Inc()
}

// UpdateL1CacheCapacity updates L1 cache capacity metrics only
func UpdateL1CacheCapacity(capacity, used int64) {
	CacheCapacity.WithLabelValues("l1").Set(float64(capacity))
	CacheUsed.WithLabelValues("l1").Set(float64(used))
}

// UpdateCacheKeys updates the number of keys in cache
func UpdateCacheKeys(level string, count int64) {
	CacheKeys.WithLabelValues(level).Set(float64(count))
}

// TimeCacheOperation returns a timer function for measuring a tier operation
func TimeCacheOperation(operation, level string) func() {
	timer := prometheus.NewTimer(CacheOperationDuration.WithLabelValues(operation, level))
	return func() {
		timer.ObserveDuration()
	}
}

// RecordDraftOperation records a draft store call
func RecordDraftOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	DraftOperations.WithLabelValues(operation, result).Inc()
}

// RecordHTTPRequest records a served HTTP request
func RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

package l1

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"go-query-cache/internal/interfaces"
	"go-query-cache/internal/metrics"
	"go-query-cache/internal/models"
	"go-query-cache/internal/scheduler"
)

// Ensure BigCache implements interfaces.Cache
var _ interfaces.Cache = (*BigCache)(nil)

// BigCache implements the L1 draft tier using BigCache
type BigCache struct {
	cache            *bigcache.BigCache
	logger           *zap.Logger
	metricsScheduler *scheduler.Scheduler
}

// NewBigCache creates a new BigCache instance. lifeWindow bounds how long any
// entry may live in memory regardless of its own expiry.
func NewBigCache(sizeMB int, lifeWindow time.Duration, logger *zap.Logger) (interfaces.Cache, error) {
	if lifeWindow <= 0 {
		lifeWindow = 24 * time.Hour
	}
	config := bigcache.DefaultConfig(lifeWindow)
	config.HardMaxCacheSize = sizeMB
	config.Verbose = false
	config.MaxEntrySize = 1024 * 1024 // 1MB max entry size

	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, err
	}

	bc := &BigCache{
		cache:  cache,
		logger: logger,
	}

	bc.startMetricsCollection()

	return bc, nil
}

// Get retrieves an unexpired entry
func (bc *BigCache) Get(key string) (*models.CacheEntry, bool) {
	defer metrics.TimeCacheOperation("get", "l1")()

	data, err := bc.cache.Get(key)
	if err != nil {
		return nil, false
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		bc.logger.Warn("Failed to unmarshal L1 cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l1", "decode")
		_ = bc.cache.Delete(key) // Remove corrupted entry
		return nil, false
	}

	if entry.IsExpired() {
		_ = bc.cache.Delete(key)
		return nil, false
	}

	return &entry, true
}

// Set stores value with ttl; zero ttl keeps it for the life window
func (bc *BigCache) Set(key string, val []byte, ttl time.Duration) {
	defer metrics.TimeCacheOperation("set", "l1")()

	data, err := json.Marshal(models.NewCacheEntry(val, ttl))
	if err != nil {
		bc.logger.Error("Failed to marshal cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l1", "encode")
		return
	}

	if err := bc.cache.Set(key, data); err != nil {
		bc.logger.Error("Failed to set cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("l1", "upstream")
	}
}

// Delete removes entry from cache
func (bc *BigCache) Delete(key string) {
	_ = bc.cache.Delete(key)
}

// Len returns the number of stored entries
func (bc *BigCache) Len() int {
	return bc.cache.Len()
}

// Close closes the cache
func (bc *BigCache) Close() error {
	bc.stopMetricsCollection()

	return bc.cache.Close()
}

// GetStats returns configured capacity and current usage in bytes
func (bc *BigCache) GetStats() (capacity, used int64) {
	capacity = int64(bc.cache.Capacity())
	used = int64(bc.cache.Len())
	return capacity, used
}

// startMetricsCollection starts periodic metrics collection
func (bc *BigCache) startMetricsCollection() {
	bc.metricsScheduler = scheduler.New(30*time.Second, bc.updateMetrics)
	bc.metricsScheduler.Start()

	// Initial collection
	bc.updateMetrics()

	bc.logger.Debug("Started L1 cache metrics collection")
}

// stopMetricsCollection stops periodic metrics collection
func (bc *BigCache) stopMetricsCollection() {
	if bc.metricsScheduler != nil {
		bc.metricsScheduler.Stop()
		bc.logger.Debug("Stopped L1 cache metrics collection")
	}
}

func (bc *BigCache) updateMetrics() {
	capacity, used := bc.GetStats()
	metrics.UpdateL1CacheCapacity(capacity, used)
	metrics.UpdateCacheKeys("l1", int64(bc.cache.Len()))
}

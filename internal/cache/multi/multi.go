package multi

import (
	"time"

	"go.uber.org/zap"

	"go-query-cache/internal/interfaces"
	"go-query-cache/internal/metrics"
	"go-query-cache/internal/models"
)

// Ensure MultiCache implements interfaces.LevelAwareCache
var _ interfaces.LevelAwareCache = (*MultiCache)(nil)

// Tier is one level of a MultiCache
type Tier struct {
	Level models.CacheLevel
	Cache interfaces.Cache
}

// MultiCache reads through its tiers in order and writes to all of them.
// With propagation enabled a hit in a lower tier is copied into the tiers above it.
type MultiCache struct {
	tiers             []Tier
	enablePropagation bool
	logger            *zap.Logger
}

// NewMultiCache creates a new MultiCache over tiers, fastest first
func NewMultiCache(tiers []Tier, enablePropagation bool, logger *zap.Logger) interfaces.LevelAwareCache {
	return &MultiCache{
		tiers:             tiers,
		enablePropagation: enablePropagation,
		logger:            logger,
	}
}

// Get retrieves value from the first tier that has the key
func (mc *MultiCache) Get(key string) (*models.CacheEntry, bool) {
	entry, _, found := mc.GetWithLevel(key)
	return entry, found
}

// GetWithLevel is Get that also reports which tier answered
func (mc *MultiCache) GetWithLevel(key string) (*models.CacheEntry, models.CacheLevel, bool) {
	if len(mc.tiers) == 0 {
		mc.logger.Warn("No caches available for get operation", zap.String("key", key))
		return nil, models.CacheLevelMiss, false
	}

	for i, tier := range mc.tiers {
		entry, found := tier.Cache.Get(key)
		if !found {
			continue
		}

		metrics.RecordCacheHit(string(tier.Level))
		if mc.enablePropagation && i > 0 {
			mc.propagate(key, entry, i)
		}
		return entry, tier.Level, true
	}

	metrics.RecordCacheMiss()
	return nil, models.CacheLevelMiss, false
}

// propagate copies entry into every tier above index hit
func (mc *MultiCache) propagate(key string, entry *models.CacheEntry, hit int) {
	ttl := entry.RemainingTTL()
	for _, tier := range mc.tiers[:hit] {
		tier.Cache.Set(key, entry.Data, ttl)
	}
	mc.logger.Debug("Propagated cache entry to upper tiers",
		zap.String("key", key),
		zap.String("from", string(mc.tiers[hit].Level)),
		zap.Duration("ttl", ttl))
}

// Set stores value in all tiers
func (mc *MultiCache) Set(key string, val []byte, ttl time.Duration) {
	if len(mc.tiers) == 0 {
		mc.logger.Warn("No caches available for set operation", zap.String("key", key))
		return
	}

	for _, tier := range mc.tiers {
		tier.Cache.Set(key, val, ttl)
	}
}

// Delete removes entry from all tiers
func (mc *MultiCache) Delete(key string) {
	if len(mc.tiers) == 0 {
		mc.logger.Warn("No caches available for delete operation", zap.String("key", key))
		return
	}

	for _, tier := range mc.tiers {
		tier.Cache.Delete(key)
	}
}

// GetCacheCount returns the number of tiers
func (mc *MultiCache) GetCacheCount() int {
	return len(mc.tiers)
}

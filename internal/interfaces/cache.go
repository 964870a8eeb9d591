package interfaces

import (
	"time"

	"go-query-cache/internal/models"
)

//go:generate mockgen -package=mock -source=cache.go -destination=mock/cache.go

// Cache is a byte tier used for draft persistence
type Cache interface {
	Get(key string) (*models.CacheEntry, bool) // returns entry and found flag
	Set(key string, val []byte, ttl time.Duration)
	Delete(key string)
}

// LevelAwareCache reports which tier answered a read
type LevelAwareCache interface {
	Cache
	GetWithLevel(key string) (*models.CacheEntry, models.CacheLevel, bool)
}

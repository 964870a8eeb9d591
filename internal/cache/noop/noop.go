package noop

import (
	"time"

	"go-query-cache/internal/interfaces"
	"go-query-cache/internal/models"
)

// Ensure NoOpCache implements interfaces.Cache
var _ interfaces.Cache = (*NoOpCache)(nil)

// NoOpCache stands in for a disabled tier
type NoOpCache struct{}

// NewNoOpCache creates a new no-operation cache instance
func NewNoOpCache() interfaces.Cache {
	return &NoOpCache{}
}

// Get always returns cache miss
func (n *NoOpCache) Get(key string) (*models.CacheEntry, bool) {
	return nil, false
}

func (n *NoOpCache) Set(key string, val []byte, ttl time.Duration) {}

func (n *NoOpCache) Delete(key string) {}

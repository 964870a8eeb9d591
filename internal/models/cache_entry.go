package models

import (
	"time"
)

// CacheEntry is the envelope stored by the byte tiers
type CacheEntry struct {
	Data      []byte `json:"data"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds, 0 never expires
}

// NewCacheEntry wraps data with timestamps derived from ttl
func NewCacheEntry(data []byte, ttl time.Duration) CacheEntry {
	now := time.Now().Unix()
	entry := CacheEntry{
		Data:      data,
		CreatedAt: now,
	}
	if ttl > 0 {
		entry.ExpiresAt = now + int64(ttl.Seconds())
	}
	return entry
}

// IsExpired checks if the entry is past its expiry
func (e *CacheEntry) IsExpired() bool {
	return e.ExpiresAt > 0 && time.Now().Unix() >= e.ExpiresAt
}

// RemainingTTL returns the time left before expiry, zero for entries without expiry
func (e *CacheEntry) RemainingTTL() time.Duration {
	if e.ExpiresAt == 0 {
		return 0
	}
	remaining := e.ExpiresAt - time.Now().Unix()
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining) * time.Second
}

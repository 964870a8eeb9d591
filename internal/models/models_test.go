package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCacheEntry_Expiry(t *testing.T) {
	entry := NewCacheEntry([]byte("draft"), time.Hour)
	assert.False(t, entry.IsExpired())
	assert.InDelta(t, time.Hour.Seconds(), entry.RemainingTTL().Seconds(), 2)

	entry.ExpiresAt = time.Now().Unix() - 1
	assert.True(t, entry.IsExpired())
	assert.Zero(t, entry.RemainingTTL())
}

func TestCacheEntry_NoExpiry(t *testing.T) {
	entry := NewCacheEntry([]byte("draft"), 0)
	assert.Zero(t, entry.ExpiresAt)
	assert.False(t, entry.IsExpired())
	assert.Zero(t, entry.RemainingTTL())
}

func TestCacheLevel_UnmarshalYAML(t *testing.T) {
	var levels []CacheLevel
	require.NoError(t, yaml.Unmarshal([]byte("[l1, l2]"), &levels))
	assert.Equal(t, []CacheLevel{CacheLevelL1, CacheLevelL2}, levels)

	err := yaml.Unmarshal([]byte("[l3]"), &levels)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cache level")
}

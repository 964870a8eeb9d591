package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-query-cache/internal/cache/l1"
	"go-query-cache/internal/cache/noop"
	"go-query-cache/internal/models"
)

func TestNewCompositionRoot_ShippedConfigs(t *testing.T) {
	t.Setenv("QUERY_CACHE_CONFIG_FILE", "../../configs/query_cache.yaml")
	t.Setenv("QUERY_RULES_FILE", "../../configs/query_rules.yaml")

	root, err := NewCompositionRoot()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Cleanup() })

	assert.Equal(t, ":8080", root.Config.Server.ListenAddr)
	assert.Equal(t, 24*time.Hour, root.Config.Drafts.TTL)
	assert.IsType(t, &l1.BigCache{}, root.L1Cache)
	assert.IsType(t, &noop.NoOpCache{}, root.L2Cache)

	require.NotNil(t, root.QueryService)
	require.NotNil(t, root.HTTPServer)
	require.NotNil(t, root.MetricsServer)

	opts := root.QueryRules.OptionsFor("caching-data")
	assert.NotEmpty(t, opts)
}

func TestNewCompositionRoot_MissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUERY_CACHE_CONFIG_FILE", dir+"/missing.yaml")
	t.Setenv("QUERY_RULES_FILE", dir+"/missing_rules.yaml")

	root, err := NewCompositionRoot()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Cleanup() })

	assert.Equal(t, []models.CacheLevel{models.CacheLevelL1, models.CacheLevelL2}, root.Config.MultiCache.Levels)
	assert.Empty(t, root.QueryRules.OptionsFor("caching-data"))

	// L1 defaults to disabled, so drafts fall through to the no-op tiers
	_, ok := root.DraftCache.Get("draft:any")
	assert.False(t, ok)
}

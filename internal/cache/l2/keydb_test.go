package l2

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-query-cache/internal/config"
	"go-query-cache/internal/interfaces/mock"
	"go-query-cache/internal/models"
)

func newTestKeyDBCache(t *testing.T) (*KeyDBCache, *mock.MockKeyDbClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockClient := mock.NewMockKeyDbClient(ctrl)
	cache := NewKeyDBCache(config.Default(), mockClient, zap.NewNop()).(*KeyDBCache)
	return cache, mockClient
}

func TestNewKeyDBCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock.NewMockKeyDbClient(ctrl)
	cfg := config.Default()
	logger := zap.NewNop()

	cache := NewKeyDBCache(cfg, mockClient, logger)

	assert.NotNil(t, cache)
	keydbCache, ok := cache.(*KeyDBCache)
	assert.True(t, ok)
	assert.Equal(t, mockClient, keydbCache.client)
	assert.Equal(t, cfg, keydbCache.config)
	assert.Equal(t, logger, keydbCache.logger)
}

func TestKeyDBCache_Get_Success(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	now := time.Now().Unix()
	entry := models.CacheEntry{
		Data:      []byte("test-data"),
		CreatedAt: now - 100,
		ExpiresAt: now + 200,
	}
	entryJSON, _ := json.Marshal(entry)

	mockClient.EXPECT().Get(gomock.Any(), "test-key").Return(redis.NewStringResult(string(entryJSON), nil))

	result, found := cache.Get("test-key")

	assert.True(t, found)
	require.NotNil(t, result)
	assert.Equal(t, []byte("test-data"), result.Data)
}

func TestKeyDBCache_Get_NotFound(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	mockClient.EXPECT().Get(gomock.Any(), "test-key").Return(redis.NewStringResult("", redis.Nil))

	result, found := cache.Get("test-key")

	assert.False(t, found)
	assert.Nil(t, result)
}

func TestKeyDBCache_Get_Error(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	mockClient.EXPECT().Get(gomock.Any(), "test-key").Return(redis.NewStringResult("", errors.New("connection error")))

	result, found := cache.Get("test-key")

	assert.False(t, found)
	assert.Nil(t, result)
}

func TestKeyDBCache_Get_Expired(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	now := time.Now().Unix()
	entry := models.CacheEntry{
		Data:      []byte("test-data"),
		CreatedAt: now - 300,
		ExpiresAt: now - 100,
	}
	entryJSON, _ := json.Marshal(entry)

	mockClient.EXPECT().Get(gomock.Any(), "test-key").Return(redis.NewStringResult(string(entryJSON), nil))
	mockClient.EXPECT().Del(gomock.Any(), "test-key").Return(redis.NewIntResult(1, nil))

	result, found := cache.Get("test-key")

	assert.False(t, found)
	assert.Nil(t, result)
}

func TestKeyDBCache_Get_CorruptedEntry(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	mockClient.EXPECT().Get(gomock.Any(), "test-key").Return(redis.NewStringResult("invalid-json", nil))
	mockClient.EXPECT().Del(gomock.Any(), "test-key").Return(redis.NewIntResult(1, nil))

	result, found := cache.Get("test-key")

	assert.False(t, found)
	assert.Nil(t, result)
}

func TestKeyDBCache_Set_Success(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	mockClient.EXPECT().
		Set(gomock.Any(), "test-key", gomock.Any(), 2*time.Hour).
		DoAndReturn(func(_ any, _ string, value any, _ time.Duration) *redis.StatusCmd {
			var entry models.CacheEntry
			require.NoError(t, json.Unmarshal(value.([]byte), &entry))
			assert.Equal(t, []byte("test-data"), entry.Data)
			assert.Greater(t, entry.ExpiresAt, entry.CreatedAt)
			return redis.NewStatusResult("OK", nil)
		})

	cache.Set("test-key", []byte("test-data"), 2*time.Hour)
}

func TestKeyDBCache_Set_ClampsTTL(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	mockClient.EXPECT().Set(gomock.Any(), "default", gomock.Any(), time.Hour).Return(redis.NewStatusResult("OK", nil))
	mockClient.EXPECT().Set(gomock.Any(), "capped", gomock.Any(), 24*time.Hour).Return(redis.NewStatusResult("OK", nil))

	cache.Set("default", []byte("v"), 0)
	cache.Set("capped", []byte("v"), 30*24*time.Hour)
}

func TestKeyDBCache_Set_Error(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	mockClient.EXPECT().Set(gomock.Any(), "test-key", gomock.Any(), time.Minute).Return(redis.NewStatusResult("", errors.New("set error")))

	// Should not panic
	cache.Set("test-key", []byte("test-data"), time.Minute)
}

func TestKeyDBCache_Delete(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	mockClient.EXPECT().Del(gomock.Any(), "ok-key").Return(redis.NewIntResult(1, nil))
	mockClient.EXPECT().Del(gomock.Any(), "bad-key").Return(redis.NewIntResult(0, errors.New("delete error")))

	cache.Delete("ok-key")
	cache.Delete("bad-key")
}

func TestKeyDBCache_Close(t *testing.T) {
	cache, mockClient := newTestKeyDBCache(t)

	mockClient.EXPECT().Close().Return(nil)
	assert.NoError(t, cache.Close())

	cache, mockClient = newTestKeyDBCache(t)
	mockClient.EXPECT().Close().Return(errors.New("close error"))
	assert.EqualError(t, cache.Close(), "close error")
}

func TestParseKeyDBURL(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name     string
		url      string
		wantAddr string
		wantPass string
		wantDB   int
		wantErr  bool
	}{
		{name: "host only", url: "redis://keydb", wantAddr: "keydb:6379"},
		{name: "host and port", url: "redis://keydb:6380", wantAddr: "keydb:6380"},
		{name: "password and db", url: "redis://:secret@keydb:6379/2", wantAddr: "keydb:6379", wantPass: "secret", wantDB: 2},
		{name: "bad scheme", url: "http://keydb:6379", wantErr: true},
		{name: "bad db", url: "redis://keydb:6379/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseKeyDBURL(cfg, tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, opts.Addr)
			assert.Equal(t, tt.wantPass, opts.Password)
			assert.Equal(t, tt.wantDB, opts.DB)
			assert.Equal(t, cfg.GetConnectTimeout(), opts.DialTimeout)
			assert.Equal(t, cfg.L2.Keepalive.PoolSize, opts.PoolSize)
		})
	}
}

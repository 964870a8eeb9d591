package multi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-query-cache/internal/cache/noop"
	"go-query-cache/internal/interfaces/mock"
	"go-query-cache/internal/models"
)

func newTiers(ctrl *gomock.Controller) (*mock.MockCache, *mock.MockCache, []Tier) {
	l1 := mock.NewMockCache(ctrl)
	l2 := mock.NewMockCache(ctrl)
	return l1, l2, []Tier{
		{Level: models.CacheLevelL1, Cache: l1},
		{Level: models.CacheLevelL2, Cache: l2},
	}
}

func TestNewMultiCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l1, l2, tiers := newTiers(ctrl)
	multiCache := NewMultiCache(tiers, true, zap.NewNop())

	assert.NotNil(t, multiCache)
	mc := multiCache.(*MultiCache)
	assert.Equal(t, 2, mc.GetCacheCount())
	assert.Equal(t, l1, mc.tiers[0].Cache)
	assert.Equal(t, l2, mc.tiers[1].Cache)
	assert.True(t, mc.enablePropagation)
}

func TestMultiCache_Get_FirstTierHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l1, _, tiers := newTiers(ctrl)
	multiCache := NewMultiCache(tiers, true, zap.NewNop())

	entry := &models.CacheEntry{Data: []byte("test-value")}
	l1.EXPECT().Get("test-key").Return(entry, true).Times(1)
	// l2.Get should not be called since l1 has the value

	got, level, found := multiCache.GetWithLevel("test-key")

	assert.True(t, found)
	assert.Equal(t, models.CacheLevelL1, level)
	assert.Equal(t, entry, got)
}

func TestMultiCache_Get_SecondTierHit_Propagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l1, l2, tiers := newTiers(ctrl)
	multiCache := NewMultiCache(tiers, true, zap.NewNop())

	entry := models.NewCacheEntry([]byte("test-value"), time.Hour)
	l1.EXPECT().Get("test-key").Return(nil, false).Times(1)
	l2.EXPECT().Get("test-key").Return(&entry, true).Times(1)
	l1.EXPECT().Set("test-key", []byte("test-value"), gomock.Any()).
		Do(func(_ string, _ []byte, ttl time.Duration) {
			assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 2)
		}).Times(1)

	got, level, found := multiCache.GetWithLevel("test-key")

	assert.True(t, found)
	assert.Equal(t, models.CacheLevelL2, level)
	assert.Equal(t, []byte("test-value"), got.Data)
}

func TestMultiCache_Get_SecondTierHit_NoPropagation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l1, l2, tiers := newTiers(ctrl)
	multiCache := NewMultiCache(tiers, false, zap.NewNop())

	entry := &models.CacheEntry{Data: []byte("test-value")}
	l1.EXPECT().Get("test-key").Return(nil, false).Times(1)
	l2.EXPECT().Get("test-key").Return(entry, true).Times(1)

	got, found := multiCache.Get("test-key")

	assert.True(t, found)
	assert.Equal(t, entry, got)
}

func TestMultiCache_Get_AllTiersMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l1, l2, tiers := newTiers(ctrl)
	multiCache := NewMultiCache(tiers, true, zap.NewNop())

	l1.EXPECT().Get("test-key").Return(nil, false).Times(1)
	l2.EXPECT().Get("test-key").Return(nil, false).Times(1)

	got, level, found := multiCache.GetWithLevel("test-key")

	assert.False(t, found)
	assert.Equal(t, models.CacheLevelMiss, level)
	assert.Nil(t, got)
}

func TestMultiCache_Get_NoTiers(t *testing.T) {
	multiCache := NewMultiCache(nil, true, zap.NewNop())

	got, found := multiCache.Get("test-key")

	assert.False(t, found)
	assert.Nil(t, got)
}

func TestMultiCache_Get_DisabledTierIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l1 := mock.NewMockCache(ctrl)
	multiCache := NewMultiCache([]Tier{
		{Level: models.CacheLevelL1, Cache: l1},
		{Level: models.CacheLevelL2, Cache: noop.NewNoOpCache()},
	}, true, zap.NewNop())

	l1.EXPECT().Get("test-key").Return(nil, false).Times(1)

	_, found := multiCache.Get("test-key")
	assert.False(t, found)
}

func TestMultiCache_Set_AllTiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l1, l2, tiers := newTiers(ctrl)
	multiCache := NewMultiCache(tiers, true, zap.NewNop())

	testVal := []byte("test-value")
	l1.EXPECT().Set("test-key", testVal, time.Hour).Times(1)
	l2.EXPECT().Set("test-key", testVal, time.Hour).Times(1)

	multiCache.Set("test-key", testVal, time.Hour)
}

func TestMultiCache_Delete_AllTiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l1, l2, tiers := newTiers(ctrl)
	multiCache := NewMultiCache(tiers, true, zap.NewNop())

	l1.EXPECT().Delete("test-key").Times(1)
	l2.EXPECT().Delete("test-key").Times(1)

	multiCache.Delete("test-key")
}

func TestMultiCache_NoTiers_WritesDoNotPanic(t *testing.T) {
	multiCache := NewMultiCache([]Tier{}, false, zap.NewNop())

	multiCache.Set("test-key", []byte("v"), time.Minute)
	multiCache.Delete("test-key")
}

package noop

import (
	"testing"
	"time"

	"go-query-cache/internal/interfaces"
)

func TestNewNoOpCache(t *testing.T) {
	cache := NewNoOpCache()

	var _ interfaces.Cache = cache

	if _, ok := cache.(*NoOpCache); !ok {
		t.Errorf("NewNoOpCache() should return a *NoOpCache instance")
	}
}

func TestNoOpCache_NeverStores(t *testing.T) {
	cache := NewNoOpCache()

	keys := []string{
		"draft:1",
		"",
		"very-long-key-with-special-characters-!@#$%^&*()",
	}

	for _, key := range keys {
		t.Run("key="+key, func(t *testing.T) {
			cache.Set(key, []byte("value"), time.Hour)

			entry, found := cache.Get(key)
			if entry != nil {
				t.Errorf("Get(%q) entry = %v, want nil", key, entry)
			}
			if found {
				t.Errorf("Get(%q) found = true, want false", key)
			}

			cache.Delete(key)
		})
	}
}

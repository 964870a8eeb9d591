package cache_rules

import (
	"sort"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewRulesConfig_NilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil config")
		}
	}()
	NewRulesConfig(nil, zaptest.NewLogger(t))
}

func TestPolicyFor(t *testing.T) {
	rc := NewRulesConfig(&QueryRulesConfig{
		Defaults: &QueryPolicy{
			StaleTime:        ptr(time.Duration(0)),
			Retention:        ptr(5 * time.Minute),
			Retry:            ptr(3),
			RefetchOnRevisit: ptr(true),
		},
		Queries: map[string]QueryPolicy{
			"caching-data": {
				StaleTime: ptr(5 * time.Minute),
				Retention: ptr(10 * time.Minute),
				Retry:     ptr(1),
			},
		},
	}, zaptest.NewLogger(t))

	got := rc.PolicyFor("caching-data")
	if *got.StaleTime != 5*time.Minute {
		t.Errorf("StaleTime = %v, want 5m", *got.StaleTime)
	}
	if *got.Retention != 10*time.Minute {
		t.Errorf("Retention = %v, want 10m", *got.Retention)
	}
	if *got.Retry != 1 {
		t.Errorf("Retry = %d, want 1", *got.Retry)
	}
	if got.RefetchOnRevisit == nil || !*got.RefetchOnRevisit {
		t.Error("RefetchOnRevisit should be inherited from defaults")
	}
	if got.RetryDelay != nil {
		t.Errorf("RetryDelay = %v, want unset", *got.RetryDelay)
	}

	unknown := rc.PolicyFor("unknown")
	if *unknown.Retention != 5*time.Minute || *unknown.Retry != 3 {
		t.Errorf("unknown query should get defaults, got %+v", unknown)
	}
}

func TestPolicyFor_DoesNotMutateDefaults(t *testing.T) {
	defaults := &QueryPolicy{Retry: ptr(3)}
	rc := NewRulesConfig(&QueryRulesConfig{
		Defaults: defaults,
		Queries:  map[string]QueryPolicy{"a": {Retry: ptr(0)}},
	}, nil)

	_ = rc.PolicyFor("a")

	if *defaults.Retry != 3 {
		t.Errorf("defaults mutated, Retry = %d", *defaults.Retry)
	}
}

func TestGetAllQueries(t *testing.T) {
	rc := NewRulesConfig(&QueryRulesConfig{
		Defaults: &QueryPolicy{},
		Queries: map[string]QueryPolicy{
			"caching-data":      {},
			"items-by-category": {},
		},
	}, nil)

	got := rc.GetAllQueries()
	sort.Strings(got)
	if len(got) != 2 || got[0] != "caching-data" || got[1] != "items-by-category" {
		t.Errorf("GetAllQueries() = %v", got)
	}
}

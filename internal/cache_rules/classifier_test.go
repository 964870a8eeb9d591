package cache_rules

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"go-query-cache/internal/cache/query"
)

func resolve(opts []query.Option) query.Options {
	o := query.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestClassifier_NilRules(t *testing.T) {
	classifier := NewClassifier(zaptest.NewLogger(t), nil)

	assert.Nil(t, classifier.OptionsFor("caching-data"))
}

func TestClassifier_EmptyName(t *testing.T) {
	rc := NewRulesConfig(&QueryRulesConfig{Defaults: &QueryPolicy{Retry: ptr(1)}}, nil)
	classifier := NewClassifier(zaptest.NewLogger(t), rc)

	assert.Nil(t, classifier.OptionsFor(""))
}

func TestClassifier_OptionsFor(t *testing.T) {
	logger := zaptest.NewLogger(t)
	rc := NewRulesConfig(&QueryRulesConfig{
		Defaults: &QueryPolicy{
			Retention: ptr(5 * time.Minute),
			Retry:     ptr(3),
		},
		Queries: map[string]QueryPolicy{
			"caching-data": {
				StaleTime:        ptr(5 * time.Minute),
				Retention:        ptr(10 * time.Minute),
				Retry:            ptr(1),
				RetryDelay:       ptr(2 * time.Second),
				RefetchOnRevisit: ptr(false),
			},
		},
	}, logger)
	classifier := NewClassifier(logger, rc)

	got := resolve(classifier.OptionsFor("caching-data"))

	assert.Equal(t, 5*time.Minute, got.StaleTime)
	assert.Equal(t, 10*time.Minute, got.Retention)
	assert.Equal(t, 1, got.RetryCount)
	assert.False(t, got.RefetchOnRevisit)
	if assert.NotNil(t, got.RetryDelay) {
		assert.Equal(t, 2*time.Second, got.RetryDelay(1, errors.New("boom")))
	}
}

func TestClassifier_UnsetFieldsKeepClientDefaults(t *testing.T) {
	rc := NewRulesConfig(&QueryRulesConfig{
		Defaults: &QueryPolicy{},
		Queries: map[string]QueryPolicy{
			"caching-data": {StaleTime: ptr(time.Minute)},
		},
	}, nil)
	classifier := NewClassifier(zaptest.NewLogger(t), rc)

	opts := classifier.OptionsFor("caching-data")
	got := resolve(opts)
	want := query.DefaultOptions()

	assert.Len(t, opts, 1)
	assert.Equal(t, time.Minute, got.StaleTime)
	assert.Equal(t, want.Retention, got.Retention)
	assert.Equal(t, want.RetryCount, got.RetryCount)
	assert.Equal(t, want.RefetchOnRevisit, got.RefetchOnRevisit)
}

package cache_rules

import (
	"go.uber.org/zap"

	"go-query-cache/internal/cache/query"
	"go-query-cache/internal/interfaces"
)

// Classifier implements the QueryRules interface
type Classifier struct {
	logger *zap.Logger
	rules  *RulesConfig
}

// Ensure Classifier implements the QueryRules interface
var _ interfaces.QueryRules = (*Classifier)(nil)

// NewClassifier creates a new Classifier instance. A nil rules config
// yields no options, leaving the client defaults in charge.
func NewClassifier(logger *zap.Logger, rules *RulesConfig) *Classifier {
	return &Classifier{
		logger: logger,
		rules:  rules,
	}
}

// OptionsFor implements QueryRules interface
func (c *Classifier) OptionsFor(name string) []query.Option {
	if c.rules == nil || name == "" {
		return nil
	}

	policy := c.rules.PolicyFor(name)

	var opts []query.Option
	if policy.StaleTime != nil {
		opts = append(opts, query.WithStaleTime(*policy.StaleTime))
	}
	if policy.Retention != nil {
		opts = append(opts, query.WithRetention(*policy.Retention))
	}
	if policy.Retry != nil {
		opts = append(opts, query.WithRetry(*policy.Retry))
	}
	if policy.RetryDelay != nil {
		opts = append(opts, query.WithConstantRetryDelay(*policy.RetryDelay))
	}
	if policy.RefetchOnRevisit != nil {
		opts = append(opts, query.WithRefetchOnRevisit(*policy.RefetchOnRevisit))
	}
	return opts
}

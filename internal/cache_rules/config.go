package cache_rules

import (
	"go.uber.org/zap"
)

// RulesConfig resolves policies for named queries from a loaded QueryRulesConfig
type RulesConfig struct {
	config *QueryRulesConfig
	logger *zap.Logger
}

// NewRulesConfig creates a new RulesConfig instance
func NewRulesConfig(config *QueryRulesConfig, logger *zap.Logger) *RulesConfig {
	if config == nil {
		panic("config cannot be nil")
	}
	return &RulesConfig{
		config: config,
		logger: logger,
	}
}

// PolicyFor merges the query-specific policy over the defaults.
// Unknown names get the defaults alone.
func (rc *RulesConfig) PolicyFor(name string) QueryPolicy {
	var merged QueryPolicy
	if rc.config.Defaults != nil {
		merged = *rc.config.Defaults
	}

	policy, ok := rc.config.Queries[name]
	if !ok {
		if rc.logger != nil {
			rc.logger.Debug("Query not found in rules, using defaults", zap.String("query", name))
		}
		return merged
	}

	if policy.StaleTime != nil {
		merged.StaleTime = policy.StaleTime
	}
	if policy.Retention != nil {
		merged.Retention = policy.Retention
	}
	if policy.Retry != nil {
		merged.Retry = policy.Retry
	}
	if policy.RetryDelay != nil {
		merged.RetryDelay = policy.RetryDelay
	}
	if policy.RefetchOnRevisit != nil {
		merged.RefetchOnRevisit = policy.RefetchOnRevisit
	}
	return merged
}

// GetAllQueries returns all configured query names
func (rc *RulesConfig) GetAllQueries() []string {
	names := make([]string, 0, len(rc.config.Queries))
	for name := range rc.config.Queries {
		names = append(names, name)
	}
	return names
}

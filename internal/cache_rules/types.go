package cache_rules

import (
	"time"
)

// QueryPolicy is the YAML shape of one query's lifecycle settings.
// Unset fields inherit from the defaults section.
type QueryPolicy struct {
	StaleTime        *time.Duration `yaml:"stale_time"`
	Retention        *time.Duration `yaml:"retention"`
	Retry            *int           `yaml:"retry"`
	RetryDelay       *time.Duration `yaml:"retry_delay"`
	RefetchOnRevisit *bool          `yaml:"refetch_on_revisit"`
}

// QueryRulesConfig represents the query rules configuration
type QueryRulesConfig struct {
	Defaults *QueryPolicy           `yaml:"defaults"`
	Queries  map[string]QueryPolicy `yaml:"queries"`
}

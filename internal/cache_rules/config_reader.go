package cache_rules

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadQueryRules loads query rules from a YAML file
func LoadQueryRules(rulesPath string, logger *zap.Logger) (*RulesConfig, error) {
	logger.Info("Loading query rules config", zap.String("path", rulesPath))

	file, err := os.Open(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open query rules file: %w", err)
	}
	defer file.Close()

	var config QueryRulesConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML query rules: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("query rules validation failed: %w", err)
	}

	logger.Info("Query rules config loaded successfully", zap.Int("queries", len(config.Queries)))

	return NewRulesConfig(&config, logger), nil
}

// validateConfig validates the query rules configuration structure
func validateConfig(config *QueryRulesConfig) error {
	if config.Defaults == nil {
		return fmt.Errorf("missing defaults section")
	}

	if err := validatePolicy(*config.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	for name, policy := range config.Queries {
		if name == "" {
			return fmt.Errorf("query with empty name")
		}
		if err := validatePolicy(policy); err != nil {
			return fmt.Errorf("queries.%s: %w", name, err)
		}
	}

	return nil
}

func validatePolicy(p QueryPolicy) error {
	if p.StaleTime != nil && *p.StaleTime < 0 {
		return fmt.Errorf("stale_time must not be negative")
	}
	if p.Retention != nil && *p.Retention < 0 {
		return fmt.Errorf("retention must not be negative")
	}
	if p.Retry != nil && *p.Retry < 0 {
		return fmt.Errorf("retry must not be negative")
	}
	if p.RetryDelay != nil && *p.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must not be negative")
	}
	return nil
}

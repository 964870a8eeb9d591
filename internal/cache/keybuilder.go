package cache

import (
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"

	"go-query-cache/internal/cache/query"
	"go-query-cache/internal/interfaces"
)

// Ensure KeyBuilderImpl implements interfaces.KeyBuilder
var _ interfaces.KeyBuilder = (*KeyBuilderImpl)(nil)

// KeyBuilderImpl implements the KeyBuilder interface
type KeyBuilderImpl struct{}

// NewKeyBuilder creates a new KeyBuilder instance
func NewKeyBuilder() interfaces.KeyBuilder {
	return &KeyBuilderImpl{}
}

// Build creates a query key of the form name:md5(json(params)).
// Map keys are sorted by encoding/json, so equal parameter sets hash equally.
func (kb *KeyBuilderImpl) Build(name string, params any) (query.Key, error) {
	if name == "" {
		return "", errors.New("query name cannot be empty")
	}

	if params == nil {
		return query.Key(name), nil
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal params: %w", err)
	}
	hasher := md5.New()
	hasher.Write(paramsJSON)

	return query.Key(fmt.Sprintf("%s:%x", name, hasher.Sum(nil))), nil
}

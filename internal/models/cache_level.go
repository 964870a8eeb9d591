package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CacheLevel names the tier that answered a read
type CacheLevel string

const (
	CacheLevelL1   CacheLevel = "l1"
	CacheLevelL2   CacheLevel = "l2"
	CacheLevelMiss CacheLevel = "miss"
)

// UnmarshalYAML implements custom YAML unmarshaling for CacheLevel
func (c *CacheLevel) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}

	switch str {
	case "l1", "l2":
		*c = CacheLevel(str)
		return nil
	default:
		return fmt.Errorf("invalid cache level '%s': must be one of 'l1', 'l2'", str)
	}
}

package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseBool reads a boolean query parameter, returning def when it is absent
func ParseBool(values url.Values, name string, def bool) (bool, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return v, nil
}

// ParseInt reads an integer query parameter, returning def when it is absent
func ParseInt(values url.Values, name string, def int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return v, nil
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/access.go
// Summary: Sectioned lookup and typed coercion over config data.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section, or the config's own top level for
// the empty name. Missing sections are nil.
func (c Config) Section(name string) Section {
	if c == nil {
		return nil
	}
	if name == "" {
		return Section(c)
	}
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills missing keys of a section without touching
// values already present.
func (c Config) RegisterDefaults(name string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	target := c.Section(name)
	if target == nil {
		target = make(Section, len(defaults))
		c[name] = target
	}
	for key, value := range defaults {
		if _, ok := target[key]; !ok {
			target[key] = value
		}
	}
}

func (c Config) value(section, key string) (interface{}, bool) {
	s := c.Section(section)
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	return v, ok
}

// GetString returns the string at (section, key), or def when the key
// is missing or not a string.
func (c Config) GetString(section, key, def string) string {
	if v, ok := c.value(section, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetInt returns the value at (section, key) truncated to int. JSON
// decoding yields float64 for numbers, so that is the common case.
func (c Config) GetInt(section, key string, def int) int {
	if v, ok := c.value(section, key); ok {
		if f, ok := asFloat(v); ok {
			return int(f)
		}
	}
	return def
}

// GetFloat returns the float64 at (section, key), or def.
func (c Config) GetFloat(section, key string, def float64) float64 {
	if v, ok := c.value(section, key); ok {
		if f, ok := asFloat(v); ok {
			return f
		}
	}
	return def
}

// GetBool returns the bool at (section, key). Strings parse through
// strconv.ParseBool; numbers are true when non-zero.
func (c Config) GetBool(section, key string, def bool) bool {
	if v, ok := c.value(section, key); ok {
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
		default:
			if f, ok := asFloat(v); ok {
				return f != 0
			}
		}
	}
	return def
}

// asFloat coerces the numeric shapes JSON decoding can produce.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Section/key color and number lookup over the system config.

package theme

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/strata/config"
)

// Section stores key/value pairs for one theme section.
type Section map[string]interface{}

// Theme maps section names to their key/value pairs. Values are the
// raw JSON-decoded entries from the "theme" tree of the system config;
// the typed getters do the interpretation.
type Theme map[string]Section

var (
	once    sync.Once
	current Theme
)

// Get returns the process-wide theme, loading it from the system
// config on first use. The returned map is shared; runtime overrides
// mutate it in place.
func Get() Theme {
	once.Do(load)
	return current
}

func load() {
	current = make(Theme)
	raw := config.System().Section("theme")
	for name, value := range raw {
		switch v := value.(type) {
		case map[string]interface{}:
			current[name] = Section(v)
		case Section:
			current[name] = v
		}
	}
}

// Reload re-reads the system config from disk and rebuilds the theme
// from it, so edited color schemes apply without a restart.
func Reload() {
	once.Do(func() {})
	if err := config.ReloadSystem(); err != nil {
		log.Printf("Theme: System config reload failed: %v", err)
	}
	load()
}

// GetColor resolves a color by section and key, falling back to def
// when the key is missing or unparseable. Values may be tcell color
// names ("pink", "darkcyan") or hex strings ("#1e1e2e").
func (t Theme) GetColor(section, key string, def tcell.Color) tcell.Color {
	s, ok := t[section]
	if !ok {
		return def
	}
	str, ok := s[key].(string)
	if !ok || str == "" {
		return def
	}
	if strings.HasPrefix(str, "#") {
		return HexColor(str).ToTcell()
	}
	if c := ResolveColorName(str); c != tcell.ColorDefault {
		return c
	}
	return def
}

// GetFloat resolves a numeric value by section and key.
func (t Theme) GetFloat(section, key string, def float64) float64 {
	s, ok := t[section]
	if !ok {
		return def
	}
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

// GetString resolves a string value by section and key.
func (t Theme) GetString(section, key, def string) string {
	s, ok := t[section]
	if !ok {
		return def
	}
	if str, ok := s[key].(string); ok && str != "" {
		return str
	}
	return def
}

// Set applies a runtime override.
func (t Theme) Set(section, key string, value interface{}) {
	s, ok := t[section]
	if !ok {
		s = Section{}
		t[section] = s
	}
	s[key] = value
}

// ResolveColorName maps a tcell color name to its color, or
// tcell.ColorDefault when the name is unknown.
func ResolveColorName(name string) tcell.Color {
	if c, ok := tcell.ColorNames[strings.ToLower(name)]; ok {
		return c
	}
	return tcell.ColorDefault
}

// HexColor is a "#rrggbb" color string.
type HexColor string

// ToTcell parses the hex string into a tcell RGB color, or
// tcell.ColorDefault when malformed.
func (h HexColor) ToTcell() tcell.Color {
	s := strings.TrimPrefix(string(h), "#")
	if len(s) != 6 {
		return tcell.ColorDefault
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return tcell.ColorDefault
	}
	return tcell.NewHexColor(int32(v))
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Parsed views of the embedded default JSON files.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/strata/defaults"
)

var (
	embeddedOnce   sync.Once
	embeddedSystem Config

	embeddedAppsMu sync.Mutex
	embeddedApps   map[string]Config
)

// defaultSystemConfig returns a fresh copy of the embedded system
// defaults, or nil when they fail to parse.
func defaultSystemConfig() Config {
	embeddedOnce.Do(func() {
		data, err := defaults.SystemConfig()
		if err != nil {
			return
		}
		var cfg Config
		if json.Unmarshal(data, &cfg) == nil {
			embeddedSystem = cfg
		}
	})
	return copyConfig(embeddedSystem)
}

// defaultAppConfig returns a fresh copy of the embedded defaults for
// the named app, or nil when the app ships none.
func defaultAppConfig(app string) Config {
	embeddedAppsMu.Lock()
	defer embeddedAppsMu.Unlock()
	if cfg, ok := embeddedApps[app]; ok {
		return copyConfig(cfg)
	}

	data, err := defaults.AppConfig(app)
	if err != nil {
		return nil
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil
	}
	if embeddedApps == nil {
		embeddedApps = make(map[string]Config)
	}
	embeddedApps[app] = cfg
	return copyConfig(cfg)
}

// copyConfig clones one level of sections so callers can mutate their
// view without corrupting the cached defaults.
func copyConfig(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	out := make(Config, len(cfg))
	for name, value := range cfg {
		if section, ok := value.(map[string]interface{}); ok {
			s := make(Section, len(section))
			for k, v := range section {
				s[k] = v
			}
			out[name] = s
			continue
		}
		out[name] = value
	}
	return out
}

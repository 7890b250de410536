// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON-backed configuration store: one system file plus one
// file per hosted app, loaded lazily and shared process-wide.

package config

import (
	"log"
	"sync"
)

const systemConfigName = "strata.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu     sync.RWMutex
	once   sync.Once
	system Config
	apps   map[string]Config
)

// System returns the system configuration (strata.json), loading it on
// first use. A missing file is created from the embedded defaults. The
// returned map is live and shared; callers that edit it persist the
// result with SaveSystem.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// App returns the configuration for a named app
// (apps/<name>/config.json), loading and caching it on first use.
func App(name string) Config {
	if name == "" {
		return nil
	}
	once.Do(initStore)

	mu.RLock()
	cfg := apps[name]
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	mu.Lock()
	defer mu.Unlock()
	if cfg, ok := apps[name]; ok {
		return cfg
	}
	loaded, err := loadAppLocked(name)
	if err != nil {
		log.Printf("Config: Failed to load app %q config: %v", name, err)
		loaded = make(Config)
		applyAppDefaults(name, loaded)
	}
	apps[name] = loaded
	return loaded
}

// ReloadSystem re-reads strata.json from disk, replacing the in-memory
// system config. theme.Reload goes through here, so edited color
// schemes apply without a restart.
func ReloadSystem() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	return loadSystemLocked()
}

// SaveSystem writes the current system config back to strata.json.
func SaveSystem() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	path, err := systemConfigPath()
	if err != nil {
		return err
	}
	return writeConfig(path, system)
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	system = make(Config)
	apps = make(map[string]Config)
	if err := loadSystemLocked(); err != nil {
		log.Printf("Config: System config unavailable, running on defaults: %v", err)
	}
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"sync"
	"testing"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	apps = nil
}

func readSystemFile(t *testing.T) Config {
	t.Helper()
	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	return disk
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetString("", "defaultApp", "") == "" {
		t.Fatalf("expected defaultApp to be set")
	}
	if readSystemFile(t).Section("desktop") == nil {
		t.Fatalf("expected desktop section on disk")
	}
}

func TestSaveSystemPersistsEdits(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	System()["defaultApp"] = "codeview"
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	if got := readSystemFile(t).GetString("", "defaultApp", ""); got != "codeview" {
		t.Fatalf("expected defaultApp codeview on disk, got %q", got)
	}
}

func TestReloadSystemPicksUpDiskEdits(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	System()
	disk := readSystemFile(t)
	disk["defaultApp"] = "codeview"

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := json.MarshalIndent(disk, "", "  ")
	if err != nil {
		t.Fatalf("marshal edited config: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write edited config: %v", err)
	}

	if err := ReloadSystem(); err != nil {
		t.Fatalf("ReloadSystem: %v", err)
	}
	if got := System().GetString("", "defaultApp", ""); got != "codeview" {
		t.Fatalf("expected reloaded defaultApp codeview, got %q", got)
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := App("clock")
	if cfg.Section("clock") == nil {
		t.Fatalf("expected clock section to be present")
	}

	path, err := appConfigPath("clock")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected app config to be written: %v", err)
	}
}

func TestRegisterDefaultsKeepsExistingValues(t *testing.T) {
	cfg := Config{
		"desktop": map[string]interface{}{
			"tick_ms": float64(33),
		},
	}
	cfg.RegisterDefaults("desktop", Section{
		"tick_ms":  16,
		"log_file": "strata.log",
	})

	if got := cfg.GetInt("desktop", "tick_ms", 0); got != 33 {
		t.Fatalf("expected existing tick_ms to survive, got %d", got)
	}
	if got := cfg.GetString("desktop", "log_file", ""); got != "strata.log" {
		t.Fatalf("expected missing key filled in, got %q", got)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"desktop": map[string]interface{}{
			"tick_ms":  float64(33),
			"log_file": "/tmp/strata.log",
			"verbose":  "true",
			"scale":    "1.5",
		},
	}
	if got := cfg.GetInt("desktop", "tick_ms", 16); got != 33 {
		t.Fatalf("GetInt: got %d", got)
	}
	if got := cfg.GetString("desktop", "log_file", ""); got != "/tmp/strata.log" {
		t.Fatalf("GetString: got %q", got)
	}
	if !cfg.GetBool("desktop", "verbose", false) {
		t.Fatalf("GetBool: expected true")
	}
	if got := cfg.GetFloat("desktop", "scale", 0); got != 1.5 {
		t.Fatalf("GetFloat: got %v", got)
	}
	if got := cfg.GetInt("desktop", "missing", 7); got != 7 {
		t.Fatalf("GetInt default: got %d", got)
	}
}

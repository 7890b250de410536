// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"defaultApp": "clock",
	})
	cfg.RegisterDefaults("desktop", Section{
		"tick_ms":  16,
		"log_file": "",
	})
	cfg.RegisterDefaults("theme", Section{
		"desktop": map[string]interface{}{
			"default_fg": "#cdd6f4",
			"default_bg": "#1e1e2e",
		},
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "clock":
		cfg.RegisterDefaults("clock", Section{
			"format":      "15:04:05",
			"interval_ms": 1000,
		})
	case "codeview":
		cfg.RegisterDefaults("codeview", Section{
			"style":     "catppuccin-mocha",
			"tab_width": 4,
		})
	}
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetColorHexAndName(t *testing.T) {
	tm := Theme{
		"desktop": Section{
			"default_bg": "#1e1e2e",
			"accent":     "pink",
			"broken":     "#zzz",
		},
	}

	assert.Equal(t, tcell.NewHexColor(0x1e1e2e), tm.GetColor("desktop", "default_bg", tcell.ColorBlack))
	assert.Equal(t, tcell.ColorNames["pink"], tm.GetColor("desktop", "accent", tcell.ColorBlack))
	assert.Equal(t, tcell.ColorBlack, tm.GetColor("desktop", "broken", tcell.ColorBlack))
	assert.Equal(t, tcell.ColorBlack, tm.GetColor("desktop", "missing", tcell.ColorBlack))
	assert.Equal(t, tcell.ColorBlack, tm.GetColor("nosection", "x", tcell.ColorBlack))
}

func TestGetFloat(t *testing.T) {
	tm := Theme{
		"pane": Section{
			"intensity": 0.35,
			"as_string": "0.5",
			"count":     3,
		},
	}

	assert.Equal(t, 0.35, tm.GetFloat("pane", "intensity", 1.0))
	assert.Equal(t, 0.5, tm.GetFloat("pane", "as_string", 1.0))
	assert.Equal(t, 3.0, tm.GetFloat("pane", "count", 1.0))
	assert.Equal(t, 1.0, tm.GetFloat("pane", "missing", 1.0))
}

func TestSetOverride(t *testing.T) {
	tm := Theme{}
	tm.Set("dialog", "border_fg", "#f5c2e7")

	assert.Equal(t, tcell.NewHexColor(0xf5c2e7), tm.GetColor("dialog", "border_fg", tcell.ColorBlack))
}

func TestGetLoadsFromConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	Reload()

	tm := Get()
	// The embedded defaults carry a desktop section.
	assert.NotEqual(t, tcell.ColorBlack, tm.GetColor("desktop", "default_bg", tcell.ColorBlack))
}

func TestReloadAppliesEditedSystemConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	Reload()

	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "strata", "strata.json")
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	var cfg map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &cfg))
	cfg["theme"] = map[string]interface{}{
		"desktop": map[string]interface{}{"default_bg": "#11111b"},
	}
	data, err = json.MarshalIndent(cfg, "", "  ")
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, data, 0644))

	Reload()
	got := Get().GetColor("desktop", "default_bg", tcell.ColorBlack)
	assert.Equal(t, tcell.NewHexColor(0x11111b), got)
}

func TestHexColorMalformed(t *testing.T) {
	assert.Equal(t, tcell.ColorDefault, HexColor("#12").ToTcell())
	assert.Equal(t, tcell.ColorDefault, HexColor("nothex").ToTcell())
	assert.Equal(t, tcell.NewHexColor(0xffffff), HexColor("#ffffff").ToTcell())
}

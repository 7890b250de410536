// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/clock/clock.go
// Summary: Ticking clock app hosted in a layer.

package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/strata/config"
	"github.com/framegrace/strata/core"
	"github.com/framegrace/strata/theme"
)

type clockApp struct {
	width, height int
	currentTime   string
	format        string
	interval      time.Duration
	mu            sync.RWMutex
	stop          chan struct{}
	stopOnce      sync.Once
	refreshChan   chan<- bool
	buf           [][]core.Cell
}

// New creates a clock app configured from apps/clock/config.json.
func New() core.App {
	cfg := config.App("clock")
	return &clockApp{
		format:   cfg.GetString("clock", "format", "15:04:05"),
		interval: time.Duration(cfg.GetInt("clock", "interval_ms", 1000)) * time.Millisecond,
		stop:     make(chan struct{}),
	}
}

func (a *clockApp) SetRefreshNotifier(refreshChan chan<- bool) {
	a.refreshChan = refreshChan
}

// Run starts a ticker that updates the time and nudges the host for a
// repaint.
func (a *clockApp) Run() error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	updateTime := func() {
		a.mu.Lock()
		a.currentTime = time.Now().Format(a.format)
		a.mu.Unlock()
	}
	updateTime()

	for {
		select {
		case <-ticker.C:
			updateTime()
			if a.refreshChan != nil {
				// Non-blocking send
				select {
				case a.refreshChan <- true:
				default:
				}
			}
		case <-a.stop:
			return nil
		}
	}
}

// Stop signals the Run loop to terminate.
func (a *clockApp) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
}

// Resize stores the new dimensions of the layer.
func (a *clockApp) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = cols, rows
}

// Render paints the current time centered in the buffer.
func (a *clockApp) Render() [][]core.Cell {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.width <= 0 || a.height <= 0 {
		return [][]core.Cell{}
	}

	if len(a.buf) != a.height || (len(a.buf) > 0 && len(a.buf[0]) != a.width) {
		a.buf = core.NewBuffer(a.width, a.height)
	}

	for i := range a.buf {
		for j := range a.buf[i] {
			a.buf[i][j] = core.Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}

	fg := theme.Get().GetColor("clock", "text_fg", tcell.PaletteColor(6))
	style := tcell.StyleDefault.Foreground(fg)

	str := fmt.Sprintf("Time: %s", a.currentTime)
	y := a.height / 2
	x := (a.width - len(str)) / 2

	if y < a.height && x >= 0 {
		for i, ch := range str {
			if x+i < a.width {
				a.buf[y][x+i] = core.Cell{Ch: ch, Style: style}
			}
		}
	}

	return a.buf
}

func (a *clockApp) GetTitle() string {
	return "Clock"
}

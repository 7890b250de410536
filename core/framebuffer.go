// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/framebuffer.go
// Summary: Double-buffered cell grid between layer redraws and the
// screen driver, with diff-aware flushing.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// FrameBuffer is the drawing surface layer redraw callbacks composite
// into. It holds the current and previously flushed cell grids so a
// flush only touches cells that actually changed. Reinit is the
// reinitialization collaborator the scheduler invokes after a resize
// phase has run.
type FrameBuffer struct {
	driver        ScreenDriver
	width, height int
	curr, prev    [][]Cell
}

// NewFrameBuffer allocates a frame buffer matching the driver's
// current size.
func NewFrameBuffer(driver ScreenDriver) *FrameBuffer {
	fb := &FrameBuffer{driver: driver}
	fb.Reinit()
	return fb
}

// Size returns the buffer's current dimensions.
func (fb *FrameBuffer) Size() (int, int) { return fb.width, fb.height }

// Reinit reallocates both grids to the driver's current size and
// discards the previous flush state, forcing the next Flush to repaint
// every cell. Resize callbacks may have changed layer sizes by the
// time this runs.
func (fb *FrameBuffer) Reinit() {
	w, h := fb.driver.Size()
	fb.width, fb.height = w, h
	fb.curr = NewBuffer(w, h)
	fb.prev = make([][]Cell, h)
	for y := range fb.prev {
		fb.prev[y] = make([]Cell, w)
	}
}

// Clear resets the whole current grid to blank default cells.
func (fb *FrameBuffer) Clear() {
	for y := range fb.curr {
		for x := range fb.curr[y] {
			fb.curr[y][x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}
}

// ClearRegion resets r's intersection with the grid to blank cells.
func (fb *FrameBuffer) ClearRegion(r Rect) {
	for y := max(r.Min.Y, 0); y < r.Max.Y && y < fb.height; y++ {
		for x := max(r.Min.X, 0); x < r.Max.X && x < fb.width; x++ {
			fb.curr[y][x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}
}

// Blit copies source onto the current grid with its top-left corner at
// origin. Cells falling outside the grid are dropped.
func (fb *FrameBuffer) Blit(origin Point, source [][]Cell) {
	for r, row := range source {
		for c, cell := range row {
			absY, absX := origin.Y+r, origin.X+c
			if absY >= 0 && absY < fb.height && absX >= 0 && absX < fb.width {
				fb.curr[absY][absX] = cell
			}
		}
	}
}

// DrawText writes s starting at (x, y) with the given style, advancing
// by display width so wide runes occupy two cells.
func (fb *FrameBuffer) DrawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= fb.height {
		return
	}
	for _, ch := range s {
		if x >= fb.width {
			break
		}
		if x >= 0 {
			fb.curr[y][x] = Cell{Ch: ch, Style: style}
		}
		x += runewidth.RuneWidth(ch)
	}
}

// Flush pushes changed cells to the driver and presents them. The
// previous grid is updated in place so the next flush diffs against
// what is actually on screen.
func (fb *FrameBuffer) Flush() {
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			if fb.curr[y][x] != fb.prev[y][x] {
				cell := fb.curr[y][x]
				fb.driver.SetContent(x, y, cell.Ch, nil, cell.Style)
				fb.prev[y][x] = cell
			}
		}
	}
	fb.driver.Show()
}

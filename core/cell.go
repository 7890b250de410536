// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/cell.go
// Summary: Character cell representation shared by apps and the frame buffer.

package core

import "github.com/gdamore/tcell/v2"

// Cell is a single character cell: a rune plus its display style.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// NewBuffer allocates a w×h cell grid filled with blank default cells.
func NewBuffer(w, h int) [][]Cell {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	buf := make([][]Cell, h)
	for y := range buf {
		buf[y] = make([]Cell, w)
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}
	return buf
}

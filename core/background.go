// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/background.go
// Summary: Default bottom layer that keeps the whole screen covered
// and blank beneath everything else.

package core

// BackgroundPane is the simplest client of the layer contract: a
// bottom layer that always spans the full screen, re-fits itself on
// every resize notification and wipes the frame buffer on redraw so
// regions vacated by closed layers come back clean.
type BackgroundPane struct {
	layer *Layer
}

// NewBackgroundPane registers a background layer on s covering root.
func NewBackgroundPane(s *Stack, root Window, fb *FrameBuffer) *BackgroundPane {
	bp := &BackgroundPane{layer: s.NewLayer()}
	bp.layer.OnScreenResize(func(l *Layer) {
		l.PositionFromWindow(root)
	})
	bp.layer.PositionFromWindow(root)
	bp.layer.OnRedraw(func(*Layer) {
		fb.Clear()
	})
	return bp
}

// Layer exposes the underlying scheduler layer.
func (bp *BackgroundPane) Layer() *Layer { return bp.layer }

// Close removes the background layer from its stack.
func (bp *BackgroundPane) Close() { bp.layer.Close() }

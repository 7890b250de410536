// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/redraw.go
// Summary: Two-phase (resize then redraw) flush cycle over the enabled
// range, safe against callbacks that mutate the stack.

package core

// Redraw unconditionally marks the topmost layer dirty and runs a
// flush cycle. External drivers call this when they want the screen
// repainted regardless of what is currently marked.
func (s *Stack) Redraw() {
	if len(s.layers) > 0 {
		s.layers[len(s.layers)-1].invalidated = true
	}
	s.RedrawInvalidated()
}

// RedrawInvalidated runs one flush cycle: deferred resize
// notifications first, then redraw dispatch, both bottom-to-top and
// both restricted to the enabled range. Inert in headless mode and on
// an empty stack.
//
// Callbacks may push new layers, close layers (their own included) or
// reposition anything; the cycle finishes over a snapshot of the
// original stack, so iteration bounds stay valid while flag reads and
// writes keep landing on the live layers through the shared pointers.
// Layers closed mid-cycle are skipped once the snapshot reaches them.
func (s *Stack) RedrawInvalidated() {
	if s.headless || len(s.layers) == 0 {
		return
	}

	// Layers pushed or removed by callbacks change neither this range
	// nor the set of layers visited until the cycle is over.
	first := s.firstEnabled()

	// view aliases the live stack until the first phase that will run
	// callbacks replaces it with a copy. The copy is shared by both
	// phases.
	view := s.layers
	copied := false
	snapshot := func() {
		if !copied {
			view = append([]*Layer(nil), view...)
			copied = true
		}
	}

	needsResize := false
	for _, l := range view[first:] {
		if l.deferredResize && l.resizeFn != nil {
			needsResize = true
			break
		}
	}
	if needsResize {
		snapshot()
		for _, l := range view[first:] {
			if l.closed || !l.deferredResize {
				continue
			}
			if l.resizeFn != nil {
				l.resizeFn(l)
			}
			l.deferredResize = false
		}
		// Callbacks may have changed layer sizes; give the backend a
		// chance to reallocate its drawing surfaces.
		if s.reinitFrame != nil {
			s.reinitFrame()
		}
	}

	needsRedraw := false
	for _, l := range view[first:] {
		if l.closed {
			continue
		}
		if l.invalidated && l.redrawFn != nil {
			needsRedraw = true
			break
		}
	}
	if needsRedraw {
		snapshot()
		for _, l := range view[first:] {
			if l.closed || !l.invalidated {
				continue
			}
			if l.redrawFn != nil {
				l.redrawFn(l)
			}
			l.invalidated = false
		}
	}

	if s.yield != nil {
		s.yield()
	}
}

// ScreenResized flags every layer for deferred resizing and starts a
// flush cycle. The disabled prefix is flagged too: those layers cannot
// be dispatched now, but they pick the pending resize up as soon as
// the blocking layer above them goes away.
func (s *Stack) ScreenResized() {
	for _, l := range s.layers {
		l.deferredResize = true
	}
	s.Redraw()
}

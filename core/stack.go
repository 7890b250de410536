// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/stack.go
// Summary: Ordered collection of live layers plus the collaborator
// hooks the redraw scheduler drives.

package core

// Stack owns the ordered collection of live layers, bottom to top:
// index 0 is painted first, the last index sits on top of everything.
// It is the context object every layer registers with and the entry
// point for region invalidation and flush cycles.
//
// A Stack and its layers must be driven from a single goroutine. All
// mutations happen synchronously inside the call that triggers them;
// the only suspension point is the cooperative yield at the end of
// RedrawInvalidated.
type Stack struct {
	layers []*Layer

	headless    bool
	reinitFrame func()
	yield       func()
}

// NewStack returns an empty stack with no collaborators wired. The
// host application owns its lifetime and should drain every layer
// before shutting down.
func NewStack() *Stack {
	return &Stack{}
}

// SetHeadless toggles test mode: while on, RedrawInvalidated is fully
// inert and no callback runs.
func (s *Stack) SetHeadless(on bool) { s.headless = on }

// SetFrameBufferReinit registers the collaborator invoked once after
// every resize phase that actually ran, so the backend can reallocate
// its drawing surfaces for the new layer sizes.
func (s *Stack) SetFrameBufferReinit(fn func()) { s.reinitFrame = fn }

// SetYield registers the cooperative yield primitive invoked once at
// the end of every flush cycle. Leave it unset on hosts that do not
// need to hand control back between frames.
func (s *Stack) SetYield(fn func()) { s.yield = fn }

// NewLayer appends a fresh, unpositioned layer on top of the stack.
func (s *Stack) NewLayer() *Layer {
	l := &Layer{stack: s}
	s.layers = append(s.layers, l)
	return l
}

// NewBlockingLayer appends a layer that disables resize and redraw
// dispatch for every layer beneath it for as long as it lives. Dialogs
// that take over the screen use this variant.
func (s *Stack) NewBlockingLayer() *Layer {
	l := &Layer{stack: s, blocksBelow: true}
	s.layers = append(s.layers, l)
	return l
}

// Len returns the number of live layers.
func (s *Stack) Len() int { return len(s.layers) }

// removeLayer erases l from whatever position it occupies and reclaims
// the region it covered. The search runs top-down because short-lived
// layers cluster near the top. Removing a blocking layer passes its
// blocking flag through, so the consistency pass runs even when the
// vacated region is degenerate and the layers below wake up correctly.
func (s *Stack) removeLayer(l *Layer) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i] == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			l.closed = true
			// TODO: invalidate only the portion of the vacated rect
			// not covered by surviving layers.
			s.InvalidateRegion(l.dims, l.blocksBelow)
			break
		}
	}
}

// firstEnabled returns the index of the bottom-most dispatchable
// layer: the topmost layer that blocks the ones below it, or 0 when no
// layer blocks. Layers below that index are excluded from resize and
// redraw dispatch and from occlusion reasoning, but not from raw
// region invalidation.
func (s *Stack) firstEnabled() int {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].blocksBelow {
			return i
		}
	}
	return 0
}

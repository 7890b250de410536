// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/layer.go
// Summary: Layer entity: a rectangular, independently redrawable region
// of the cell grid with scheduler-managed dirty state.

package core

// RedrawFunc is invoked by the scheduler when a layer must repaint its
// content.
type RedrawFunc func(*Layer)

// ResizeFunc is invoked during the resize phase of a flush cycle. It
// receives the layer so it can reposition it against the new screen
// geometry.
type ResizeFunc func(*Layer)

// Layer is one entry in a Stack: a screen rectangle plus the dirty
// bookkeeping the scheduler needs around it. Layers are created through
// Stack.NewLayer or Stack.NewBlockingLayer and released with Close.
// Identity is pointer identity; layers are never compared by value.
type Layer struct {
	stack *Stack

	dims        Rect
	blocksBelow bool

	// Scheduler-owned metadata, mutated during invalidation and flush
	// passes rather than by the layer's content.
	invalidated    bool
	deferredResize bool
	closed         bool

	redrawFn RedrawFunc
	resizeFn ResizeFunc
}

// Dimensions returns the layer's current screen footprint. It is the
// zero Rect until the layer is first positioned.
func (l *Layer) Dimensions() Rect { return l.dims }

// BlocksBelow reports whether this layer suppresses resize and redraw
// dispatch for every layer beneath it.
func (l *Layer) BlocksBelow() bool { return l.blocksBelow }

// OnRedraw installs fn as the redraw callback. A nil fn clears it; the
// scheduler then still clears the dirty flag but has nothing to call.
func (l *Layer) OnRedraw(fn RedrawFunc) { l.redrawFn = fn }

// OnScreenResize installs fn as the screen-resize callback. A nil fn
// clears it, which also keeps the layer out of resize dispatch.
func (l *Layer) OnScreenResize(fn ResizeFunc) { l.resizeFn = fn }

// MarkResize flags the layer for the next resize phase on its own,
// without a stack-wide Stack.ScreenResized.
func (l *Layer) MarkResize() { l.deferredResize = true }

// Position places the layer at topLeft covering size cells. The new
// rectangle is stored before the vacated region is invalidated, so
// overlap checks triggered by the invalidation already see the new
// footprint while the old one is reclaimed. Positioning a closed
// layer is a no-op.
func (l *Layer) Position(topLeft, size Point) {
	if l.closed {
		return
	}
	old := l.dims
	l.dims = RectAt(topLeft, size)
	l.invalidated = true
	if l.stack != nil {
		l.stack.InvalidateRegion(old, false)
	}
}

// PositionFromWindow places the layer over win's current bounds. A nil
// window collapses the layer to a zero rectangle at the origin.
// Positioning a closed layer is a no-op.
func (l *Layer) PositionFromWindow(win Window) {
	if l.closed {
		return
	}
	if win == nil {
		l.Position(Point{}, Point{})
		return
	}
	old := l.dims
	l.dims = win.Bounds()
	l.invalidated = true
	if l.stack != nil {
		l.stack.InvalidateRegion(old, false)
	}
}

// Reset clears both callbacks and collapses the layer to the zero
// rectangle at the origin, reclaiming whatever it covered.
func (l *Layer) Reset() {
	l.OnScreenResize(nil)
	l.OnRedraw(nil)
	l.Position(Point{}, Point{})
}

// Close deregisters the layer from its stack at whatever position it
// occupies and invalidates the region it covered, so anything beneath
// is repainted. Closing an already closed layer is a no-op.
func (l *Layer) Close() {
	if l.stack != nil {
		l.stack.removeLayer(l)
	}
}

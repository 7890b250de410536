// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedrawDispatchesTopAndClearsFlag(t *testing.T) {
	s := NewStack()
	bg := s.NewLayer()
	bg.Position(Pt(0, 0), Pt(80, 24))
	calls := 0
	bg.OnRedraw(func(*Layer) { calls++ })
	bg.invalidated = false

	s.Redraw()

	assert.Equal(t, 1, calls)
	assert.False(t, bg.invalidated)

	// Nothing dirty anymore: another plain cycle does no work.
	s.RedrawInvalidated()
	assert.Equal(t, 1, calls)
}

func TestRedrawEmptyStackIsInert(t *testing.T) {
	s := NewStack()
	yields := 0
	s.SetYield(func() { yields++ })

	s.Redraw()
	s.RedrawInvalidated()

	assert.Equal(t, 0, yields)
}

func TestRedrawInvalidatedHeadless(t *testing.T) {
	s := NewStack()
	s.SetHeadless(true)
	l := s.NewLayer()
	l.Position(Pt(0, 0), Pt(10, 10))
	calls := 0
	l.OnRedraw(func(*Layer) { calls++ })

	s.Redraw()

	assert.Equal(t, 0, calls)
	assert.True(t, l.invalidated)
}

func TestYieldFiresOncePerCycle(t *testing.T) {
	s := NewStack()
	l := s.NewLayer()
	l.Position(Pt(0, 0), Pt(10, 10))
	yields := 0
	s.SetYield(func() { yields++ })

	s.RedrawInvalidated()
	assert.Equal(t, 1, yields)

	// Even with nothing to dispatch the cycle still yields once.
	s.RedrawInvalidated()
	assert.Equal(t, 2, yields)
}

func TestResizePhaseRunsBottomToTop(t *testing.T) {
	s := NewStack()
	var order []string
	bottom := s.NewLayer()
	bottom.Position(Pt(0, 0), Pt(80, 24))
	bottom.OnScreenResize(func(*Layer) { order = append(order, "bottom") })
	top := s.NewLayer()
	top.Position(Pt(10, 5), Pt(30, 10))
	top.OnScreenResize(func(*Layer) { order = append(order, "top") })

	reinits := 0
	s.SetFrameBufferReinit(func() { reinits++ })

	s.ScreenResized()

	assert.Equal(t, []string{"bottom", "top"}, order)
	assert.Equal(t, 1, reinits)
	assert.False(t, bottom.deferredResize)
	assert.False(t, top.deferredResize)
}

func TestScreenResizedWithBlockingDialog(t *testing.T) {
	s := NewStack()
	var order []string
	bg := s.NewLayer()
	bg.Position(Pt(0, 0), Pt(80, 24))
	bg.OnScreenResize(func(*Layer) { order = append(order, "background") })
	bg.OnRedraw(func(*Layer) {})
	dialog := s.NewBlockingLayer()
	dialog.Position(Pt(10, 5), Pt(30, 10))
	dialog.OnScreenResize(func(*Layer) { order = append(order, "dialog") })
	dialog.OnRedraw(func(*Layer) {})

	s.ScreenResized()

	// Only the enabled range (the dialog) was dispatched; the
	// background keeps its pending flag for later.
	assert.Equal(t, []string{"dialog"}, order)
	assert.True(t, bg.deferredResize)
	assert.False(t, dialog.deferredResize)

	dialog.Close()
	s.Redraw()

	assert.Equal(t, []string{"dialog", "background"}, order)
	assert.False(t, bg.deferredResize)
}

func TestResizeFlagClearedWithoutCallback(t *testing.T) {
	s := NewStack()
	noCb := s.NewLayer()
	noCb.Position(Pt(0, 0), Pt(10, 10))
	withCb := s.NewLayer()
	withCb.Position(Pt(20, 0), Pt(10, 10))
	withCb.OnScreenResize(func(*Layer) {})

	noCb.deferredResize = true
	withCb.deferredResize = true
	s.RedrawInvalidated()

	assert.False(t, noCb.deferredResize)
	assert.False(t, withCb.deferredResize)
}

func TestResizePhaseSkippedWhenNoCallbacksAnywhere(t *testing.T) {
	s := NewStack()
	l := s.NewLayer()
	l.Position(Pt(0, 0), Pt(10, 10))
	l.deferredResize = true
	l.invalidated = false

	reinits := 0
	s.SetFrameBufferReinit(func() { reinits++ })

	s.RedrawInvalidated()

	// No resize callback registered anywhere: the phase never runs,
	// the flag stays pending and the frame buffer is left alone.
	assert.True(t, l.deferredResize)
	assert.Equal(t, 0, reinits)
}

func TestRedrawCallbackClosesLayerAbove(t *testing.T) {
	s := NewStack()
	x := s.NewLayer()
	x.Position(Pt(0, 0), Pt(40, 20))
	y := s.NewLayer()
	y.Position(Pt(50, 0), Pt(10, 10))

	xCalls, yCalls := 0, 0
	x.OnRedraw(func(*Layer) {
		xCalls++
		y.Close()
	})
	y.OnRedraw(func(*Layer) { yCalls++ })

	x.invalidated = true
	s.RedrawInvalidated()

	assert.Equal(t, 1, xCalls)
	assert.Equal(t, 0, yCalls)
	assert.Equal(t, 1, s.Len())
	assert.False(t, x.invalidated)
}

func TestRedrawCallbackPushesNewLayer(t *testing.T) {
	s := NewStack()
	base := s.NewLayer()
	base.Position(Pt(0, 0), Pt(40, 20))

	var pushed *Layer
	pushedCalls := 0
	base.OnRedraw(func(*Layer) {
		pushed = s.NewLayer()
		pushed.OnRedraw(func(*Layer) { pushedCalls++ })
		pushed.dims = RectAt(Pt(5, 5), Pt(5, 5))
		pushed.invalidated = true
	})

	base.invalidated = true
	s.RedrawInvalidated()

	// The snapshot bounds the cycle to the original stack; the layer
	// pushed mid-callback waits for the next cycle.
	assert.Equal(t, 0, pushedCalls)
	assert.Equal(t, 2, s.Len())

	s.RedrawInvalidated()
	assert.Equal(t, 1, pushedCalls)
}

func TestResizeCallbackClosesLayerAbove(t *testing.T) {
	s := NewStack()
	x := s.NewLayer()
	x.Position(Pt(0, 0), Pt(40, 20))
	y := s.NewLayer()
	y.Position(Pt(50, 0), Pt(10, 10))

	yResizes, yRedraws := 0, 0
	x.OnScreenResize(func(*Layer) { y.Close() })
	y.OnScreenResize(func(*Layer) { yResizes++ })
	y.OnRedraw(func(*Layer) { yRedraws++ })
	y.invalidated = true

	x.deferredResize = true
	y.deferredResize = true
	s.RedrawInvalidated()

	// Both phases iterate the shared snapshot and skip the layer the
	// resize callback tore down.
	assert.Equal(t, 0, yResizes)
	assert.Equal(t, 0, yRedraws)
	assert.Equal(t, 1, s.Len())
}

func TestReentrantCycleFromYieldDoesNoRepeatWork(t *testing.T) {
	s := NewStack()
	l := s.NewLayer()
	l.Position(Pt(0, 0), Pt(10, 10))
	calls := 0
	l.OnRedraw(func(*Layer) { calls++ })

	depth := 0
	s.SetYield(func() {
		if depth == 0 {
			depth++
			s.RedrawInvalidated()
		}
	})

	l.invalidated = true
	s.RedrawInvalidated()

	// The re-entrant cycle sees already-cleared flags.
	assert.Equal(t, 1, calls)
	assert.False(t, l.invalidated)
}

func TestRedrawPhaseRunsBottomToTop(t *testing.T) {
	s := NewStack()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		l := s.NewLayer()
		l.Position(Pt(0, 0), Pt(10, 10))
		l.OnRedraw(func(*Layer) { order = append(order, name) })
		l.invalidated = true
	}

	s.RedrawInvalidated()

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

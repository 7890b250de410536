// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/invalidate.go
// Summary: Rectangle-driven dirtying, cascading-overlap propagation and
// occlusion culling over the layer stack.

package core

// InvalidateRegion marks every layer whose rectangle overlaps rect for
// redraw and then restores stack-wide dirty consistency.
//
// The whole stack is scanned, including layers currently disabled by a
// blocking layer, so that when the blocker goes away the layers below
// are already correctly marked and redraw just proceeds. A degenerate
// rect marks nothing; reenableBelow then decides whether the
// consistency pass still runs, which is what removing a blocking layer
// needs when nothing else changed shape.
func (s *Stack) InvalidateRegion(rect Rect, reenableBelow bool) {
	if rect.Empty() {
		if reenableBelow {
			s.reconcile()
		}
		return
	}
	for _, l := range s.layers {
		if !l.invalidated && overlap(l.dims, rect) {
			l.invalidated = true
		}
	}
	s.reconcile()
}

// Invalidate marks the layer for redraw unless repainting it could not
// change what is on screen: the layer is already marked, it is not
// registered in a stack, or a layer above it completely covers its
// rectangle. A layer sitting below a blocking layer is still marked,
// so that it repaints correctly once the blocker is removed.
func (l *Layer) Invalidate() {
	if l.invalidated || l.stack == nil {
		return
	}
	s := l.stack
	idx := -1
	for i, cand := range s.layers {
		if cand == l {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for _, upper := range s.layers[idx+1:] {
		if contains(upper.dims, l.dims) {
			return
		}
	}
	l.invalidated = true
	s.reconcile()
}

// reconcile runs one sweep of two rules over every ordered pair of
// layers in the enabled range:
//
//  1. a clean layer overlapping a dirty layer beneath it becomes
//     dirty, because repainting the lower layer disturbs the shared
//     area and the upper layer draws after it;
//  2. a dirty layer whose rectangle is fully contained in a dirty
//     layer above it becomes clean again, since its entire footprint
//     will be overpainted anyway.
//
// Disabled layers are left out: they are never dispatched, so their
// dirty flags never clear, and including them would keep re-dirtying
// every upper layer they intersect.
//
// One sweep is enough per triggering event. Rule 2 never needs to
// revisit lower layers from before an upper layer turned dirty: for
// the upper layer to contain a lower one they must overlap, so rule 1
// had already marked the upper layer during that lower layer's own
// iteration.
func (s *Stack) reconcile() {
	first := s.firstEnabled()
	enabled := s.layers[first:]
	for i, upper := range enabled {
		for _, lower := range enabled[:i] {
			if !upper.invalidated && lower.invalidated &&
				overlap(upper.dims, lower.dims) {
				upper.invalidated = true
			}
			if upper.invalidated && lower.invalidated &&
				contains(upper.dims, lower.dims) {
				lower.invalidated = false
			}
		}
	}
}

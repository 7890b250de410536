// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/rect.go
// Summary: Integer point and rectangle primitives for layer geometry.

package core

// Point is a position or an extent on the cell grid.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{x, y} }

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Rect is a half-open axis-aligned rectangle on the cell grid: Min is
// the top-left corner, Max is one cell past the bottom-right corner.
type Rect struct {
	Min, Max Point
}

// RectAt builds the rectangle covering size cells starting at origin.
func RectAt(origin, size Point) Rect {
	return Rect{Min: origin, Max: origin.Add(size)}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Width returns the horizontal extent of r, never negative.
func (r Rect) Width() int {
	w := r.Max.X - r.Min.X
	if w < 0 {
		return 0
	}
	return w
}

// Height returns the vertical extent of r, never negative.
func (r Rect) Height() int {
	h := r.Max.Y - r.Min.Y
	if h < 0 {
		return 0
	}
	return h
}

// Size returns the width and height of r as a Point.
func (r Rect) Size() Point { return Point{r.Width(), r.Height()} }

// contains reports whether inner lies fully within outer. Shared edges
// count as contained. Degenerate rectangles get no special treatment:
// a zero rectangle at the origin is only contained by rectangles whose
// edges reach the origin.
func contains(outer, inner Rect) bool {
	return inner.Min.X >= outer.Min.X && inner.Max.X <= outer.Max.X &&
		inner.Min.Y >= outer.Min.Y && inner.Max.Y <= outer.Max.Y
}

// overlap reports whether the open interiors of a and b intersect.
// Rectangles that merely touch along an edge do not overlap.
func overlap(a, b Rect) bool {
	return a.Min.X < b.Max.X && a.Min.Y < b.Max.Y &&
		b.Min.X < a.Max.X && b.Min.Y < a.Max.Y
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	outer := RectAt(Pt(0, 0), Pt(10, 10))

	cases := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"identical", RectAt(Pt(0, 0), Pt(10, 10)), true},
		{"strictly inside", RectAt(Pt(2, 2), Pt(5, 5)), true},
		{"shared edge", RectAt(Pt(0, 0), Pt(10, 5)), true},
		{"spills right", RectAt(Pt(5, 5), Pt(10, 2)), false},
		{"spills top", RectAt(Pt(2, -1), Pt(2, 2)), false},
		{"fully outside", RectAt(Pt(20, 20), Pt(2, 2)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, contains(outer, tc.inner))
		})
	}
}

func TestOverlap(t *testing.T) {
	a := RectAt(Pt(0, 0), Pt(10, 10))

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", RectAt(Pt(0, 0), Pt(10, 10)), true},
		{"partial", RectAt(Pt(5, 5), Pt(10, 10)), true},
		{"contained", RectAt(Pt(2, 2), Pt(3, 3)), true},
		{"touching right edge", RectAt(Pt(10, 0), Pt(5, 10)), false},
		{"touching bottom edge", RectAt(Pt(0, 10), Pt(10, 5)), false},
		{"disjoint", RectAt(Pt(30, 30), Pt(2, 2)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, overlap(a, tc.b))
			assert.Equal(t, tc.want, overlap(tc.b, a))
		})
	}
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, Rect{}.Empty())
	assert.True(t, RectAt(Pt(3, 3), Pt(0, 5)).Empty())
	assert.True(t, Rect{Min: Pt(5, 5), Max: Pt(4, 9)}.Empty())
	assert.False(t, RectAt(Pt(0, 0), Pt(1, 1)).Empty())
}

func TestRectSize(t *testing.T) {
	r := RectAt(Pt(2, 3), Pt(7, 4))
	assert.Equal(t, 7, r.Width())
	assert.Equal(t, 4, r.Height())
	assert.Equal(t, Pt(7, 4), r.Size())

	inverted := Rect{Min: Pt(5, 5), Max: Pt(1, 1)}
	assert.Equal(t, 0, inverted.Width())
	assert.Equal(t, 0, inverted.Height())
}

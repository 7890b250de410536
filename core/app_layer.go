// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/app_layer.go
// Summary: Hosts an App inside a scheduler layer, wiring placement,
// resize and redraw callbacks.

package core

// PlacementFunc computes a layer's rectangle from the current screen
// rectangle. It runs once when the app is added and again on every
// screen-resize notification.
type PlacementFunc func(screen Rect) Rect

// FullScreen places a layer over the whole screen.
func FullScreen(screen Rect) Rect { return screen }

// Centered returns a PlacementFunc that centers a fixed-size rectangle
// on the screen.
func Centered(size Point) PlacementFunc {
	return func(screen Rect) Rect {
		origin := Point{
			X: screen.Min.X + (screen.Width()-size.X)/2,
			Y: screen.Min.Y + (screen.Height()-size.Y)/2,
		}
		return RectAt(origin, size)
	}
}

// AppLayer glues an App to a Layer: the resize callback recomputes the
// placement and propagates the new size to the app, the redraw
// callback blits the app's rendered buffer into the frame buffer.
type AppLayer struct {
	layer *Layer
	app   App
	fb    *FrameBuffer
	root  Window
	place PlacementFunc
}

func newAppLayer(layer *Layer, app App, fb *FrameBuffer, root Window, place PlacementFunc) *AppLayer {
	al := &AppLayer{layer: layer, app: app, fb: fb, root: root, place: place}
	layer.OnScreenResize(func(l *Layer) { al.applyPlacement() })
	layer.OnRedraw(func(l *Layer) {
		al.fb.Blit(l.Dimensions().Min, al.app.Render())
	})
	al.applyPlacement()
	return al
}

func (al *AppLayer) applyPlacement() {
	r := al.place(al.root.Bounds())
	al.layer.Position(r.Min, r.Size())
	al.app.Resize(r.Width(), r.Height())
}

// Layer exposes the underlying scheduler layer.
func (al *AppLayer) Layer() *Layer { return al.layer }

// App exposes the hosted app.
func (al *AppLayer) App() App { return al.app }

// Invalidate marks the hosting layer for redraw.
func (al *AppLayer) Invalidate() { al.layer.Invalidate() }

// Close removes the layer from the stack. The desktop stops the app
// separately through its lifecycle manager.
func (al *AppLayer) Close() { al.layer.Close() }

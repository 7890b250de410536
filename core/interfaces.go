// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/interfaces.go
// Summary: Collaborator interfaces the scheduler and desktop consume.

package core

import "github.com/gdamore/tcell/v2"

// Window resolves to a screen rectangle on demand. Layers positioned
// from a window re-resolve it on every resize notification, so
// implementations should return current geometry, not a cached copy.
type Window interface {
	Bounds() Rect
}

// ScreenDriver abstracts the rendering surface used by the desktop. It
// mirrors the subset of tcell.Screen functionality the frame buffer and
// event loop need, so tests can swap in a stub or simulation screen.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	Show()
	PollEvent() tcell.Event
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (rune, []rune, tcell.Style, int)
}

// AppLifecycleManager governs how app instances are started and
// stopped. The default implementation runs apps locally; tests can
// inject a tracking fake.
type AppLifecycleManager interface {
	StartApp(app App)
	StopApp(app App)
}

// LocalAppLifecycle runs each app on its own goroutine.
type LocalAppLifecycle struct{}

func (LocalAppLifecycle) StartApp(app App) {
	go func() { _ = app.Run() }()
}

func (LocalAppLifecycle) StopApp(app App) {
	app.Stop()
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/app.go
// Summary: Contract for content apps hosted inside a layer.

package core

// App produces the content of one layer. The desktop starts it through
// an AppLifecycleManager, resizes it when its layer is repositioned and
// composites whatever Render returns into the frame buffer when the
// scheduler dispatches the layer's redraw.
type App interface {
	// Run blocks until Stop is called. Apps with no background work
	// may return immediately.
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
}

// RefreshNotifier is implemented by apps whose content changes on
// their own (clocks, tickers). The channel receives a non-blocking
// nudge whenever the app wants its layer repainted.
type RefreshNotifier interface {
	SetRefreshNotifier(ch chan<- bool)
}

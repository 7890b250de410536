// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/desktop.go
// Summary: Host event loop owning the screen driver, the layer stack
// and the frame buffer.

package core

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/strata/config"
	"github.com/framegrace/strata/theme"
)

// screenWindow resolves the driver's full screen as a Window, so the
// background pane and full-screen placements always see current
// geometry.
type screenWindow struct {
	driver ScreenDriver
}

func (w screenWindow) Bounds() Rect {
	cols, rows := w.driver.Size()
	return RectAt(Point{}, Point{X: cols, Y: rows})
}

// Desktop drives the scheduler from a tcell event loop: resize events
// become ScreenResized calls, app refresh nudges become layer
// invalidations followed by a flush cycle, and every cycle ends with a
// diff-aware flush of the frame buffer.
type Desktop struct {
	driver    ScreenDriver
	stack     *Stack
	fb        *FrameBuffer
	lifecycle AppLifecycleManager

	background *BackgroundPane
	appLayers  []*AppLayer

	refreshCh chan *AppLayer
	quit      chan struct{}
	closeOnce sync.Once

	DefaultFgColor tcell.Color
	DefaultBgColor tcell.Color
}

// NewDesktop initializes the driver and wires a stack, a frame buffer
// and a background pane together. A nil lifecycle falls back to
// LocalAppLifecycle.
func NewDesktop(driver ScreenDriver, lifecycle AppLifecycleManager) (*Desktop, error) {
	if driver == nil {
		return nil, fmt.Errorf("screen driver is required")
	}
	if lifecycle == nil {
		lifecycle = LocalAppLifecycle{}
	}
	if err := driver.Init(); err != nil {
		return nil, fmt.Errorf("init screen driver: %w", err)
	}

	defaultFg, defaultBg, _ := initDefaultColors()
	tm := theme.Get()
	fg := tm.GetColor("desktop", "default_fg", defaultFg)
	bg := tm.GetColor("desktop", "default_bg", defaultBg)
	driver.SetStyle(tcell.StyleDefault.Foreground(fg).Background(bg))
	driver.HideCursor()

	d := &Desktop{
		driver:         driver,
		stack:          NewStack(),
		lifecycle:      lifecycle,
		refreshCh:      make(chan *AppLayer, 16),
		quit:           make(chan struct{}),
		DefaultFgColor: defaultFg,
		DefaultBgColor: defaultBg,
	}
	d.fb = NewFrameBuffer(driver)
	d.stack.SetFrameBufferReinit(d.fb.Reinit)
	d.stack.SetYield(runtime.Gosched)
	d.background = NewBackgroundPane(d.stack, d.Root(), d.fb)
	return d, nil
}

// Root returns the full-screen window backed by the driver.
func (d *Desktop) Root() Window { return screenWindow{driver: d.driver} }

// Stack exposes the scheduler context for direct layer work.
func (d *Desktop) Stack() *Stack { return d.stack }

// FrameBuffer exposes the shared drawing surface.
func (d *Desktop) FrameBuffer() *FrameBuffer { return d.fb }

// AddApp hosts app in a fresh layer on top of the stack.
func (d *Desktop) AddApp(app App, place PlacementFunc) *AppLayer {
	return d.addApp(d.stack.NewLayer(), app, place)
}

// AddModalApp hosts app in a blocking layer: resize and redraw
// dispatch for everything beneath it is suppressed until the layer is
// removed.
func (d *Desktop) AddModalApp(app App, place PlacementFunc) *AppLayer {
	return d.addApp(d.stack.NewBlockingLayer(), app, place)
}

func (d *Desktop) addApp(layer *Layer, app App, place PlacementFunc) *AppLayer {
	al := newAppLayer(layer, app, d.fb, d.Root(), place)
	d.appLayers = append(d.appLayers, al)
	if rn, ok := app.(RefreshNotifier); ok {
		notify := make(chan bool, 1)
		rn.SetRefreshNotifier(notify)
		go d.forwardRefresh(al, notify)
	}
	d.lifecycle.StartApp(app)
	return al
}

// RemoveApp stops the app and withdraws its layer from the stack.
func (d *Desktop) RemoveApp(al *AppLayer) {
	for i, cand := range d.appLayers {
		if cand == al {
			d.appLayers = append(d.appLayers[:i], d.appLayers[i+1:]...)
			break
		}
	}
	d.lifecycle.StopApp(al.app)
	al.Close()
}

// forwardRefresh serializes app-side refresh nudges onto the main
// loop, which owns all stack mutation.
func (d *Desktop) forwardRefresh(al *AppLayer, notify <-chan bool) {
	for {
		select {
		case <-d.quit:
			return
		case <-notify:
			select {
			case d.refreshCh <- al:
			case <-d.quit:
				return
			}
		}
	}
}

// Run starts the main event loop and blocks until Esc, 'q', Ctrl-C or
// Close. All scheduler calls happen on this goroutine.
func (d *Desktop) Run() error {
	eventChan := make(chan tcell.Event, 10)
	go func() {
		for {
			select {
			case <-d.quit:
				return
			default:
				eventChan <- d.driver.PollEvent()
			}
		}
	}()

	tick := config.System().GetInt("desktop", "tick_ms", 16)
	ticker := time.NewTicker(time.Duration(tick) * time.Millisecond)
	defer ticker.Stop()

	d.stack.Redraw()
	d.fb.Flush()

	for {
		select {
		case ev := <-eventChan:
			if d.handleEvent(ev) {
				return nil
			}
		case al := <-d.refreshCh:
			al.Invalidate()
			d.stack.RedrawInvalidated()
			d.fb.Flush()
		case <-ticker.C:
			d.stack.RedrawInvalidated()
			d.fb.Flush()
		case <-d.quit:
			return nil
		}
	}
}

func (d *Desktop) handleEvent(ev tcell.Event) (done bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.stack.ScreenResized()
		d.fb.Flush()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true
		}
	}
	return false
}

// Close stops every hosted app, drains the stack and releases the
// driver. Safe to call more than once.
func (d *Desktop) Close() {
	d.closeOnce.Do(func() {
		close(d.quit)
		for _, al := range d.appLayers {
			d.lifecycle.StopApp(al.app)
			al.Close()
		}
		d.appLayers = nil
		if d.background != nil {
			d.background.Close()
		}
		if n := d.stack.Len(); n != 0 {
			log.Printf("Desktop: %d layers still registered at shutdown", n)
		}
		d.driver.Fini()
	})
}

// initDefaultColors queries the terminal for its default colors.
func initDefaultColors() (tcell.Color, tcell.Color, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return tcell.ColorWhite, tcell.ColorBlack, fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()

	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		return tcell.ColorWhite, tcell.ColorBlack, fmt.Errorf("MakeRaw: %w", err)
	}
	defer term.Restore(int(tty.Fd()), oldState)

	query := func(code int) (tcell.Color, error) {
		seq := fmt.Sprintf("\x1b]%d;?\a", code)
		if _, err := tty.WriteString(seq); err != nil {
			return tcell.ColorDefault, err
		}
		resp := make([]byte, 0, 64)
		buf := make([]byte, 1)
		deadline := time.Now().Add(500 * time.Millisecond)
		if err := tty.SetReadDeadline(deadline); err != nil {
			return tcell.ColorDefault, err
		}
		for {
			n, err := tty.Read(buf)
			if err != nil {
				return tcell.ColorDefault, fmt.Errorf("read reply: %w", err)
			}
			resp = append(resp, buf[:n]...)
			if buf[0] == '\a' {
				break
			}
		}
		pattern := fmt.Sprintf(`\x1b\]%d;rgb:([0-9A-Fa-f]{4})/([0-9A-Fa-f]{4})/([0-9A-Fa-f]{4})`, code)
		re := regexp.MustCompile(pattern)
		m := re.FindStringSubmatch(string(resp))
		if len(m) != 4 {
			return tcell.ColorDefault, fmt.Errorf("unexpected reply: %q", resp)
		}
		hex2int := func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 16, 32)
			return int32(v), err
		}
		r, _ := hex2int(m[1])
		g, _ := hex2int(m[2])
		b, _ := hex2int(m[3])
		return tcell.NewRGBColor(r, g, b), nil
	}

	fg, err := query(10)
	if err != nil {
		fg = tcell.ColorWhite
	}
	bg, err := query(11)
	if err != nil {
		bg = tcell.ColorBlack
	}
	return fg, bg, nil
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/strata-stress/main.go
// Summary: Headless soak tool for the layer scheduler.
// Usage: Run `strata-stress -cycles 10000` to hammer the stack with
// random create/position/invalidate/close traffic over a simulation
// screen and report callback counts.

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/strata/core"
)

func main() {
	cycles := flag.Int("cycles", 10000, "number of mutation cycles to run")
	maxLayers := flag.Int("layers", 32, "maximum live layers")
	seed := flag.Int64("seed", 1, "random seed")
	width := flag.Int("width", 160, "simulated screen width")
	height := flag.Int("height", 48, "simulated screen height")
	flag.Parse()

	screen := tcell.NewSimulationScreen("ansi")
	driver := core.NewTcellScreenDriver(screen)
	if err := driver.Init(); err != nil {
		log.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(*width, *height)
	defer driver.Fini()

	fb := core.NewFrameBuffer(driver)
	stack := core.NewStack()

	rng := rand.New(rand.NewSource(*seed))
	var redraws, resizes, reinits int
	stack.SetFrameBufferReinit(func() {
		reinits++
		fb.Reinit()
	})

	randomRect := func() (core.Point, core.Point) {
		origin := core.Pt(rng.Intn(*width), rng.Intn(*height))
		size := core.Pt(1+rng.Intn(*width/2), 1+rng.Intn(*height/2))
		return origin, size
	}

	newLayer := func(blocking bool) *core.Layer {
		var l *core.Layer
		if blocking {
			l = stack.NewBlockingLayer()
		} else {
			l = stack.NewLayer()
		}
		l.OnRedraw(func(l *core.Layer) {
			redraws++
			fb.ClearRegion(l.Dimensions())
		})
		l.OnScreenResize(func(l *core.Layer) {
			resizes++
			origin, size := randomRect()
			l.Position(origin, size)
		})
		origin, size := randomRect()
		l.Position(origin, size)
		return l
	}

	live := make([]*core.Layer, 0, *maxLayers)
	for i := 0; i < *cycles; i++ {
		switch op := rng.Intn(10); {
		case op < 4 && len(live) < *maxLayers:
			live = append(live, newLayer(rng.Intn(8) == 0))
		case op < 6 && len(live) > 0:
			idx := rng.Intn(len(live))
			live[idx].Close()
			live = append(live[:idx], live[idx+1:]...)
		case op < 8 && len(live) > 0:
			origin, size := randomRect()
			live[rng.Intn(len(live))].Position(origin, size)
		case op < 9 && len(live) > 0:
			live[rng.Intn(len(live))].Invalidate()
		default:
			stack.ScreenResized()
		}
		stack.RedrawInvalidated()
		fb.Flush()
	}

	for _, l := range live {
		l.Close()
	}
	stack.RedrawInvalidated()

	fmt.Printf("cycles=%d redraws=%d resizes=%d reinits=%d remaining=%d\n",
		*cycles, redraws, resizes, reinits, stack.Len())
	if stack.Len() != 0 {
		fmt.Fprintln(os.Stderr, "stack not empty at shutdown")
		os.Exit(1)
	}
}

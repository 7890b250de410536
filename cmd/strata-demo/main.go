// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/strata-demo/main.go
// Summary: Interactive demo: background, clock pane and a modal
// syntax-highlighted source dialog on one layer stack.
// Usage: Run `strata-demo`; press Esc or q to quit.

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/strata/apps/clock"
	"github.com/framegrace/strata/apps/codeview"
	"github.com/framegrace/strata/config"
	"github.com/framegrace/strata/core"
	"github.com/framegrace/strata/registry"
)

//go:embed main.go
var ownSource string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	appName := flag.String("app", "", "app to host in the main pane (default from config)")
	showDialog := flag.Bool("dialog", true, "open the modal source dialog on top")
	saveDefault := flag.Bool("save-default", false, "persist -app as the configured default")
	logPath := flag.String("log", "", "log file path (default from config)")
	flag.Parse()

	if *logPath == "" {
		*logPath = config.System().GetString("desktop", "log_file", "strata-demo.log")
	}
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("Demo: starting")

	reg := registry.New()
	reg.Register("clock", clock.New)
	reg.Register("codeview", func() core.App {
		return codeview.New("main.go", ownSource)
	})

	if *appName == "" {
		*appName = config.System().GetString("", "defaultApp", "clock")
	}
	mainApp, ok := reg.Create(*appName)
	if !ok {
		return fmt.Errorf("unknown app %q (have %v)", *appName, reg.Names())
	}
	if *saveDefault {
		config.System()["defaultApp"] = *appName
		if err := config.SaveSystem(); err != nil {
			return fmt.Errorf("save default app: %w", err)
		}
		log.Printf("Demo: Saved default app %q", *appName)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	desktop, err := core.NewDesktop(core.NewTcellScreenDriver(screen), nil)
	if err != nil {
		return fmt.Errorf("init desktop: %w", err)
	}
	defer desktop.Close()

	desktop.AddApp(mainApp, core.FullScreen)
	if *showDialog {
		dialog, ok := reg.Create("codeview")
		if ok {
			desktop.AddModalApp(dialog, core.Centered(core.Pt(60, 18)))
		}
	}

	if err := desktop.Run(); err != nil {
		return fmt.Errorf("desktop loop: %w", err)
	}
	log.Println("Demo: stopped cleanly")
	return nil
}

// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/codeview/codeview.go
// Summary: Syntax-highlighted source viewer app.
// Usage: Hosted in a dialog layer to display a file with Chroma colors.

package codeview

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	enry "github.com/go-enry/go-enry/v2"

	"github.com/framegrace/strata/config"
	"github.com/framegrace/strata/core"
)

type codeViewApp struct {
	title    string
	lines    [][]core.Cell
	bgStyle  tcell.Style
	tabWidth int

	mu            sync.RWMutex
	width, height int
	buf           [][]core.Cell
}

// New creates a viewer for the given file contents. The language is
// detected from the filename and content; detection failures fall back
// to Chroma's own content analysis.
func New(filename, content string) core.App {
	cfg := config.App("codeview")
	styleName := cfg.GetString("codeview", "style", "catppuccin-mocha")
	tabWidth := cfg.GetInt("codeview", "tab_width", 4)
	if tabWidth < 1 {
		tabWidth = 1
	}

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	bg := style.Get(chroma.Background)
	bgStyle := tcell.StyleDefault.
		Background(chromaColour(bg.Background)).
		Foreground(chromaColour(style.Get(chroma.Text).Colour))

	a := &codeViewApp{
		title:    filename,
		bgStyle:  bgStyle,
		tabWidth: tabWidth,
	}
	a.lines = highlight(filename, content, style, bgStyle, tabWidth)
	return a
}

func (a *codeViewApp) Run() error { return nil }

func (a *codeViewApp) Stop() {}

func (a *codeViewApp) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = cols, rows
	a.buf = nil
}

func (a *codeViewApp) Render() [][]core.Cell {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.width <= 0 || a.height <= 0 {
		return [][]core.Cell{}
	}
	if a.buf == nil {
		a.buf = make([][]core.Cell, a.height)
		for y := range a.buf {
			a.buf[y] = make([]core.Cell, a.width)
		}
	}

	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			a.buf[y][x] = core.Cell{Ch: ' ', Style: a.bgStyle}
		}
		if y < len(a.lines) {
			for x := 0; x < a.width && x < len(a.lines[y]); x++ {
				a.buf[y][x] = a.lines[y][x]
			}
		}
	}
	return a.buf
}

func (a *codeViewApp) GetTitle() string { return a.title }

// highlight tokenizes content and lays it out as styled cell lines.
func highlight(filename, content string, style *chroma.Style, bgStyle tcell.Style, tabWidth int) [][]core.Cell {
	lexer := getLexer(filename, content)
	lexer = chroma.Coalesce(lexer)

	tokens, err := chroma.Tokenise(lexer, nil, content)
	if err != nil {
		return plainLines(content, bgStyle, tabWidth)
	}

	var lines [][]core.Cell
	line := []core.Cell{}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(style.Get(tok.Type), bgStyle)
		for _, ch := range tok.Value {
			switch ch {
			case '\n':
				lines = append(lines, line)
				line = []core.Cell{}
			case '\t':
				for i := 0; i < tabWidth; i++ {
					line = append(line, core.Cell{Ch: ' ', Style: st})
				}
			default:
				line = append(line, core.Cell{Ch: ch, Style: st})
			}
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func plainLines(content string, style tcell.Style, tabWidth int) [][]core.Cell {
	raw := strings.Split(content, "\n")
	lines := make([][]core.Cell, 0, len(raw))
	for _, l := range raw {
		l = strings.ReplaceAll(l, "\t", strings.Repeat(" ", tabWidth))
		cells := make([]core.Cell, 0, len(l))
		for _, ch := range l {
			cells = append(cells, core.Cell{Ch: ch, Style: style})
		}
		lines = append(lines, cells)
	}
	return lines
}

// getLexer resolves a Chroma lexer via enry language detection, then
// Chroma's own lookup and content analysis.
func getLexer(filename, content string) chroma.Lexer {
	if lang := enry.GetLanguage(filename, []byte(content)); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Match(filename); l != nil {
		return l
	}
	if l := lexers.Analyse(content); l != nil {
		return l
	}
	return lexers.Fallback
}

func tokenStyle(entry chroma.StyleEntry, base tcell.Style) tcell.Style {
	st := base
	if entry.Colour.IsSet() {
		st = st.Foreground(chromaColour(entry.Colour))
	}
	if entry.Background.IsSet() {
		st = st.Background(chromaColour(entry.Background))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

func chromaColour(c chroma.Colour) tcell.Color {
	if !c.IsSet() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

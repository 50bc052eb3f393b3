// Copyright © 2026 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/reorder-demo/main.go
// Summary: Entry point for the texeldnd snippet-board demo.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texeldnd/apps/reorder"
	"github.com/framegrace/texeldnd/config"
	"github.com/framegrace/texeldnd/dnd"
)

func main() {
	dbPath := flag.String("db", "", "path to the order database (default: user config dir)")
	ephemeral := flag.Bool("ephemeral", false, "do not persist list ordering")
	verbose := flag.Bool("verbose", false, "log debug output to stderr")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "reorder-demo must be run on a terminal")
		os.Exit(1)
	}
	reorder.SetVerboseLogging(*verbose, os.Stderr)

	if err := run(*dbPath, *ephemeral); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dbPath string, ephemeral bool) error {
	var store *reorder.OrderStore
	if !ephemeral {
		if dbPath == "" {
			root, err := config.DataRoot()
			if err != nil {
				return fmt.Errorf("resolve data dir: %w", err)
			}
			dbPath = filepath.Join(root, "order.db")
		}
		s, err := reorder.OpenOrderStore(dbPath)
		if err != nil {
			// run without persistence rather than refuse to start
			log.Printf("order store unavailable: %v", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	board := reorder.New(store)
	var tracker dnd.PointerTracker
	w, h := screen.Size()
	board.Resize(w, h)

	for {
		frame := dnd.NewFrame(w, h)
		frame.Pointer = tracker.Frame()
		board.Render(frame)
		blit(screen, frame.Composite())
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h = ev.Size()
			board.Resize(w, h)
			screen.Sync()
		case *tcell.EventMouse:
			tracker.HandleMouse(ev)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// blit flushes a composited cell buffer to the screen. Zero cells are left
// to the cleared background so wide-rune continuation cells stay intact.
func blit(screen tcell.Screen, buf [][]dnd.Cell) {
	screen.Clear()
	for y, row := range buf {
		for x, c := range row {
			if c.Ch == 0 {
				continue
			}
			screen.SetContent(x, y, c.Ch, nil, c.Style)
		}
	}
}

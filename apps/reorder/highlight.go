// Copyright © 2026 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/reorder/highlight.go
// Summary: Chroma-based snippet colorization into cells.

package reorder

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texeldnd/dnd"
	"github.com/framegrace/texeldnd/theme"
)

const defaultStyleName = "catppuccin-mocha"

// chromaStyle resolves a style name to a Chroma style, falling back to the
// default.
func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// snippetLexer picks a lexer from an explicit language hint, falling back to
// enry content detection and finally chroma's own analysis.
func snippetLexer(code, lang string) chroma.Lexer {
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if detected := enry.GetLanguage("", []byte(code)); detected != "" {
		if l := lexers.Get(detected); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(code); l != nil {
		return l
	}
	return lexers.Fallback
}

// highlightLine tokenizes one line of code and returns it as styled cells.
// Highlighting failures degrade to unstyled text.
func highlightLine(code, lang string) []dnd.Cell {
	style := chromaStyle(theme.Get().GetString("board", "chroma_style", ""))

	lexer := chroma.Coalesce(snippetLexer(code, lang))
	tokens, err := chroma.Tokenise(lexer, nil, code)
	if err != nil {
		return plainCells(code)
	}

	cells := make([]dnd.Cell, 0, len(code))
	for _, tok := range tokens {
		entry := style.Get(tok.Type)
		st := tcell.StyleDefault
		if entry.Colour.IsSet() {
			st = st.Foreground(tcell.NewRGBColor(
				int32(entry.Colour.Red()),
				int32(entry.Colour.Green()),
				int32(entry.Colour.Blue()),
			))
		}
		if entry.Bold == chroma.Yes {
			st = st.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			st = st.Italic(true)
		}
		for _, ch := range tok.Value {
			if ch == '\n' {
				continue
			}
			cells = append(cells, dnd.Cell{Ch: ch, Style: st})
		}
	}
	return cells
}

func plainCells(code string) []dnd.Cell {
	cells := make([]dnd.Cell, 0, len(code))
	for _, ch := range code {
		cells = append(cells, dnd.Cell{Ch: ch, Style: tcell.StyleDefault})
	}
	return cells
}

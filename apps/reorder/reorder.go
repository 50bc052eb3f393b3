// Copyright © 2026 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/reorder/reorder.go
// Summary: Snippet board demo app; nested drag-and-drop reorderable lists.

// Package reorder is the texeldnd example application: a board of named
// snippet groups. The group list and each group's snippet list are
// independently reorderable by dragging the ≡ handles. The board owns its
// backing slices and applies the index moves the widget reports; the widget
// itself never touches them.
package reorder

import (
	"io"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldnd/dnd"
	"github.com/framegrace/texeldnd/theme"
)

var debugLog = log.New(io.Discard, "reorder: ", log.LstdFlags)

// SetVerboseLogging toggles demo debug output. Discarded by default.
func SetVerboseLogging(enable bool, w io.Writer) {
	if enable {
		debugLog.SetOutput(w)
	} else {
		debugLog.SetOutput(io.Discard)
	}
}

// Snippet is one orderable entry inside a group: a name plus a single line
// of code, highlighted lazily on first draw.
type Snippet struct {
	Name string
	Lang string
	Code string

	cells []dnd.Cell
}

func (s *Snippet) DragID() dnd.ID { return dnd.ID("s:" + s.Name) }

// Group is one orderable entry in the board's top-level list. It owns an
// independent child list of snippets with its own drag state.
type Group struct {
	Name     string
	Snippets []*Snippet

	list  *dnd.ListState
	items []dnd.Item
}

func (g *Group) DragID() dnd.ID { return dnd.ID("g:" + g.Name) }

func (g *Group) rebuildItems() {
	g.items = g.items[:0]
	for _, s := range g.Snippets {
		g.items = append(g.items, s)
	}
}

// Board is the demo application state. It renders once per frame and is
// driven entirely by the host's event loop; no goroutines, no callbacks.
type Board struct {
	width, height int
	groups        []*Group
	list          *dnd.ListState
	items         []dnd.Item
	store         *OrderStore

	frame *dnd.Frame // current frame, valid during Render only

	titleStyle  tcell.Style
	headerStyle tcell.Style
	nameStyle   tcell.Style
	handleStyle tcell.Style
}

// New builds the board with the default snippet set, restoring any
// previously saved ordering from store. store may be nil.
func New(store *OrderStore) *Board {
	b := &Board{
		groups: defaultGroups(),
		list:   dnd.NewListState(),
		store:  store,
	}
	for _, g := range b.groups {
		g.list = dnd.NewListState()
	}

	tm := theme.Get()
	fg := tm.GetColor("board", "text_fg", tcell.ColorWhite)
	bg := tm.GetColor("board", "surface_bg", tcell.ColorDefault)
	b.titleStyle = tcell.StyleDefault.Foreground(tm.GetColor("board", "title_fg", tcell.ColorAqua)).Background(bg).Bold(true)
	b.headerStyle = tcell.StyleDefault.Foreground(tm.GetColor("board", "header_fg", tcell.ColorYellow)).Background(bg).Bold(true)
	b.nameStyle = tcell.StyleDefault.Foreground(fg).Background(bg)
	b.handleStyle = tcell.StyleDefault.Foreground(tm.GetColor("board", "handle_fg", tcell.ColorGray)).Background(bg)

	b.restoreOrder()
	b.rebuildItems()
	return b
}

// Resize stores the new dimensions of the drawing surface.
func (b *Board) Resize(w, h int) {
	b.width, b.height = w, h
}

// Render draws the board into f and applies any reorder the widget reports.
func (b *Board) Render(f *dnd.Frame) {
	b.frame = f
	defer func() { b.frame = nil }()

	f.Main.DrawText(1, 0, "texeldnd — drag ≡ to reorder, q quits", b.titleStyle)

	area := dnd.Rect{X: 1, Y: 2, W: b.width - 2, H: b.height - 2}
	resp := b.list.List(f, f.Main, area, b.items, b.drawGroup)
	if resp.Kind == dnd.ResponseCompleted {
		if err := dnd.Move(resp.Source, resp.Target, b.groups); err != nil {
			debugLog.Printf("group move: %v", err)
			return
		}
		b.rebuildItems()
		b.saveGroupOrder()
	}
}

func (b *Board) drawGroup(p *dnd.Painter, h dnd.Handle, index int, item dnd.Item, x, y int) int {
	g := item.(*Group)
	h.Draw(p, x, y, "≡ ", b.handleStyle)
	p.DrawText(x+2, y, g.Name, b.headerStyle)

	childArea := dnd.Rect{X: x + 3, Y: y + 1, W: b.width - x - 4, H: 2 * len(g.Snippets)}
	resp := g.list.List(b.frame, p, childArea, g.items, b.drawSnippet)
	if resp.Kind == dnd.ResponseCompleted {
		if err := dnd.Move(resp.Source, resp.Target, g.Snippets); err != nil {
			debugLog.Printf("snippet move in %s: %v", g.Name, err)
		} else {
			g.rebuildItems()
			b.saveSnippetOrder(g)
		}
	}

	// header + snippets + one spacing row
	return 1 + 2*len(g.Snippets) + 1
}

func (b *Board) drawSnippet(p *dnd.Painter, h dnd.Handle, index int, item dnd.Item, x, y int) int {
	s := item.(*Snippet)
	h.Draw(p, x, y, "≡ ", b.handleStyle)
	p.DrawText(x+2, y, s.Name, b.nameStyle)
	if s.cells == nil {
		s.cells = highlightLine(s.Code, s.Lang)
	}
	for i, c := range s.cells {
		p.SetCell(x+4+i, y+1, c.Ch, c.Style)
	}
	return 2
}

func (b *Board) rebuildItems() {
	b.items = b.items[:0]
	for _, g := range b.groups {
		b.items = append(b.items, g)
	}
	for _, g := range b.groups {
		g.rebuildItems()
	}
}

func (b *Board) saveGroupOrder() {
	if b.store == nil {
		return
	}
	names := make([]string, len(b.groups))
	for i, g := range b.groups {
		names[i] = g.Name
	}
	if err := b.store.SaveOrder("groups", names); err != nil {
		debugLog.Printf("save group order: %v", err)
	}
}

func (b *Board) saveSnippetOrder(g *Group) {
	if b.store == nil {
		return
	}
	names := make([]string, len(g.Snippets))
	for i, s := range g.Snippets {
		names[i] = s.Name
	}
	if err := b.store.SaveOrder("group:"+g.Name, names); err != nil {
		debugLog.Printf("save snippet order for %s: %v", g.Name, err)
	}
}

func (b *Board) restoreOrder() {
	if b.store == nil {
		return
	}
	if names, err := b.store.LoadOrder("groups"); err == nil && len(names) > 0 {
		reorderByName(b.groups, names, func(g *Group) string { return g.Name })
	}
	for _, g := range b.groups {
		if names, err := b.store.LoadOrder("group:" + g.Name); err == nil && len(names) > 0 {
			reorderByName(g.Snippets, names, func(s *Snippet) string { return s.Name })
		}
	}
}

// reorderByName sorts xs to match the saved name sequence. Entries not in
// the saved sequence keep their relative order after the saved ones.
func reorderByName[T any](xs []T, names []string, name func(T) string) {
	rank := make(map[string]int, len(names))
	for i, n := range names {
		rank[n] = i
	}
	ordered := make([]T, 0, len(xs))
	var rest []T
	for _, x := range xs {
		if _, ok := rank[name(x)]; ok {
			ordered = append(ordered, x)
		} else {
			rest = append(rest, x)
		}
	}
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && rank[name(ordered[j-1])] > rank[name(ordered[j])]; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}
	copy(xs, append(ordered, rest...))
}

func defaultGroups() []*Group {
	return []*Group{
		{
			Name: "shell",
			Snippets: []*Snippet{
				{Name: "count-lines", Lang: "bash", Code: `wc -l *.go | sort -n`},
				{Name: "find-todo", Lang: "bash", Code: `grep -rn "TODO" --include="*.go" .`},
				{Name: "disk-usage", Lang: "bash", Code: `du -sh * | sort -h | tail`},
			},
		},
		{
			Name: "go",
			Snippets: []*Snippet{
				{Name: "http-server", Lang: "go", Code: `log.Fatal(http.ListenAndServe(":8080", nil))`},
				{Name: "read-file", Lang: "go", Code: `data, err := os.ReadFile("config.json")`},
				{Name: "json-decode", Lang: "go", Code: `err := json.Unmarshal(data, &cfg)`},
				{Name: "defer-close", Lang: "go", Code: `defer f.Close()`},
			},
		},
		{
			Name: "sql",
			Snippets: []*Snippet{
				{Name: "top-n", Lang: "sql", Code: `SELECT name, score FROM players ORDER BY score DESC LIMIT 10;`},
				{Name: "upsert", Lang: "sql", Code: `INSERT INTO kv(k, v) VALUES(?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v;`},
			},
		},
	}
}

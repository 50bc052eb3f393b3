package dnd

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter draws into a cell buffer, clipped to a rectangle.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

// NewPainter wraps buf with a clip covering the whole buffer.
func NewPainter(buf [][]Cell) *Painter {
	w := 0
	if len(buf) > 0 {
		w = len(buf[0])
	}
	return &Painter{buf: buf, clip: Rect{W: w, H: len(buf)}}
}

// Clipped returns a painter restricted to r (intersected with the current clip).
func (p *Painter) Clipped(r Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(r)}
}

func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	r = r.Intersect(p.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.buf[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// DrawText draws a string at (x, y) and returns the columns advanced.
// Wide runes occupy their full width; zero-width runes are skipped.
func (p *Painter) DrawText(x, y int, text string, style tcell.Style) int {
	cx := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		p.SetCell(cx, y, ch, style)
		for i := 1; i < w; i++ {
			// continuation cell of a wide rune
			p.SetCell(cx+i, y, 0, style)
		}
		cx += w
	}
	return cx - x
}

// HLine draws a horizontal run of ch starting at (x, y).
func (p *Painter) HLine(x, y, w int, ch rune, style tcell.Style) {
	for i := 0; i < w; i++ {
		p.SetCell(x+i, y, ch, style)
	}
}

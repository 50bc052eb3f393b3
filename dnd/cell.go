package dnd

import "github.com/gdamore/tcell/v2"

// Cell is one screen cell. A zero Ch means the cell is empty; the overlay
// compositor treats empty cells as transparent.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Rect is a cell-grid rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of two rects, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// NewBuffer allocates a w×h cell buffer.
func NewBuffer(w, h int) [][]Cell {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	buf := make([][]Cell, h)
	for y := range buf {
		buf[y] = make([]Cell, w)
	}
	return buf
}

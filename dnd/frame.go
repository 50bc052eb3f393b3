package dnd

import "github.com/gdamore/tcell/v2"

// Pointer is the pointer state for one frame. Pressed and Released are
// edge transitions observed since the previous frame; Held is the level.
type Pointer struct {
	X, Y     int
	Held     bool
	Pressed  bool
	Released bool
}

// Frame is the per-frame render context handed to widgets: current pointer
// state plus two drawing surfaces. Widgets draw in-flow content to Main and
// floating content (the dragged item) to Overlay; the host composites and
// flushes after the frame.
type Frame struct {
	W, H    int
	Main    *Painter
	Overlay *Painter
	Pointer Pointer

	mainBuf    [][]Cell
	overlayBuf [][]Cell
}

func NewFrame(w, h int) *Frame {
	f := &Frame{
		W:          w,
		H:          h,
		mainBuf:    NewBuffer(w, h),
		overlayBuf: NewBuffer(w, h),
	}
	f.Main = NewPainter(f.mainBuf)
	f.Overlay = NewPainter(f.overlayBuf)
	return f
}

// Composite merges the overlay onto the main buffer and returns the result.
// Overlay cells with a zero rune are transparent.
func (f *Frame) Composite() [][]Cell {
	for y := range f.overlayBuf {
		for x, c := range f.overlayBuf[y] {
			if c.Ch != 0 {
				f.mainBuf[y][x] = c
			}
		}
	}
	return f.mainBuf
}

// PointerTracker folds tcell mouse events into per-frame Pointer values.
// Feed every mouse event to HandleMouse; call Frame once per render pass to
// consume the accumulated transitions.
type PointerTracker struct {
	x, y     int
	down     bool
	pressed  bool
	released bool
}

func (t *PointerTracker) HandleMouse(ev *tcell.EventMouse) {
	t.x, t.y = ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !t.down {
		t.pressed = true
	}
	if !down && t.down {
		t.released = true
	}
	t.down = down
}

func (t *PointerTracker) Frame() Pointer {
	p := Pointer{X: t.x, Y: t.y, Held: t.down, Pressed: t.pressed, Released: t.released}
	t.pressed, t.released = false, false
	return p
}

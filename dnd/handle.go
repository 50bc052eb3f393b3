package dnd

import "github.com/gdamore/tcell/v2"

// Handle is the drag-initiating sub-region of one item. The list renderer
// hands a Handle to the item callback; the callback must draw exactly one
// handle region per item via Draw. Only presses inside that region start a
// drag.
type Handle struct {
	state *ListState
	frame *Frame
	id    ID
	index int

	// item origin, for the grab offset
	itemX, itemY int

	// floating is set when the callback is re-run to paint the dragged copy
	// on the overlay; a floating handle never senses input
	floating bool
}

// Draw paints the handle text at (x, y) and arms the drawn region for drag
// detection. While a drag is active elsewhere in the same list the region is
// inert.
func (h Handle) Draw(p *Painter, x, y int, text string, style tcell.Style) {
	w := p.DrawText(x, y, text, style)
	if h.floating || h.state.active {
		return
	}
	pt := h.frame.Pointer
	region := Rect{X: x, Y: y, W: w, H: 1}
	if pt.Pressed && region.Contains(pt.X, pt.Y) {
		h.state.begin(h.id, h.index, h.itemX-pt.X, h.itemY-pt.Y)
	}
}

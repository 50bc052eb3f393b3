package dnd

// ItemFunc draws one item at (x, y) into p and returns the rows it consumed
// (at least 1 is assumed). It must draw the item's handle region via h.Draw
// and may draw arbitrary body content, including rendering a nested list
// with an independent ListState.
type ItemFunc func(p *Painter, h Handle, index int, item Item, x, y int) int

// List draws items in sequence order into area on p and advances the drag
// gesture for this frame. While a drag is active the displayed order
// previews the pending move: the dragged item floats on the overlay under
// the pointer, a gap marker occupies the slot it would land in, and the
// remaining items shift around it.
//
// p is usually f.Main; a nested list rendered from inside an ItemFunc passes
// the painter the callback received, so a child list inside a floating
// parent follows it onto the overlay.
//
// List never mutates items. On ResponseCompleted the caller applies
// Move(Source, Target, ...) to its own collection before the next frame;
// indices are only meaningful against the sequence passed to this call.
func (s *ListState) List(f *Frame, p *Painter, area Rect, items []Item, draw ItemFunc) Response {
	n := len(items)
	if n == 0 {
		s.reset()
		return Response{}
	}

	wasActive := s.active
	if wasActive {
		// Re-anchor by identity: the host may have applied a move (or
		// reordered otherwise) since the last frame.
		idx := indexOf(items, s.dragID)
		if idx < 0 {
			s.reset()
			wasActive = false
		} else {
			s.source = idx
			if s.target >= n {
				s.target = n - 1
			}
		}
	}

	// Displayed order previews the pending move.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if wasActive {
		if err := Move(s.source, s.target, order); err != nil {
			// busted indices; drop the drag rather than draw garbage
			s.reset()
			wasActive = false
		}
	}

	pt := f.Pointer
	y := area.Y
	// midpoints of the non-dragged items as displayed this frame
	mids := make([]int, 0, n)

	for _, idx := range order {
		it := items[idx]
		if wasActive && it.DragID() == s.dragID {
			// Float the dragged item at the pointer and mark the vacated
			// slot with a gap of the same height.
			fx := pt.X + s.grabDX
			fy := pt.Y + s.grabDY
			h := draw(f.Overlay, Handle{state: s, frame: f, floating: true}, idx, it, fx, fy)
			if h < 1 {
				h = 1
			}
			s.drawGap(p, Rect{X: area.X, Y: y, W: area.W, H: h})
			y += h
			continue
		}
		top := y
		handle := Handle{
			state: s,
			frame: f,
			id:    it.DragID(),
			index: idx,
			itemX: area.X,
			itemY: top,
		}
		h := draw(p, handle, idx, it, area.X, top)
		if h < 1 {
			h = 1
		}
		mids = append(mids, top+h/2)
		y += h
	}

	if !s.active {
		return Response{}
	}
	if !wasActive {
		// The drag started during this pass; the preview begins next frame.
		s.target = s.source
		return Response{Kind: ResponseDragging, Source: s.source, Target: s.target}
	}

	// Candidate target: the number of sibling midpoints the pointer has
	// crossed. Always within [0, n-1] since there are n-1 siblings.
	target := 0
	for _, mid := range mids {
		if mid < pt.Y {
			target++
		}
	}
	s.target = target

	switch {
	case pt.Released:
		source := s.source
		s.reset()
		if source != target {
			return Response{Kind: ResponseCompleted, Source: source, Target: target}
		}
		return Response{}
	case pt.Held:
		return Response{Kind: ResponseDragging, Source: s.source, Target: s.target}
	default:
		// Pointer capture lost without a release event (focus loss, missed
		// events): abandon the drag silently.
		s.reset()
		return Response{}
	}
}

func (s *ListState) drawGap(p *Painter, r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		p.HLine(r.X, y, r.W, '┈', s.GapStyle)
	}
}

func indexOf(items []Item, id ID) int {
	for i, it := range items {
		if it.DragID() == id {
			return i
		}
	}
	return -1
}

package dnd

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldnd/theme"
)

// ID identifies an item within one list. The host derives it from something
// stable (a name, a path); it must be unique per list for the lifetime of a
// drag, or pointer-to-item correlation is undefined.
type ID string

// Item is any value the host wants orderable.
type Item interface {
	DragID() ID
}

// ResponseKind classifies the outcome of one List call.
type ResponseKind int

const (
	// ResponseNone: no drag activity (also reported when a drag ends on its
	// own slot or is cancelled).
	ResponseNone ResponseKind = iota
	// ResponseDragging: a drag is in progress; Source and Target carry the
	// live preview indices.
	ResponseDragging
	// ResponseCompleted: the pointer was released over a new slot. The caller
	// should apply Move(Source, Target, ...) to its backing collection.
	ResponseCompleted
)

// Response is the transient result of one List call. It is never persisted.
type Response struct {
	Kind   ResponseKind
	Source int
	Target int
}

// ListState tracks the drag session for one reorderable list. Each list
// (including every nested child list) owns an independent ListState; the
// zero value is Idle.
//
// All fields are touched only inside List and Handle.Draw, synchronously
// within the host's render pass; there is no locking and no goroutine.
type ListState struct {
	active bool
	dragID ID
	source int
	target int

	// pointer offset from the dragged item's origin at grab time, used to
	// position the floating copy under the pointer
	grabDX, grabDY int

	// GapStyle paints the vacated slot marker while a drag is in progress.
	// The zero value falls back to the terminal default style.
	GapStyle tcell.Style
}

// NewListState returns a ListState with the gap marker styled from the theme.
func NewListState() *ListState {
	tm := theme.Get()
	fg := tm.GetColor("dnd", "gap_fg", tcell.ColorGray)
	bg := tm.GetColor("dnd", "gap_bg", tcell.ColorDefault)
	return &ListState{
		GapStyle: tcell.StyleDefault.Foreground(fg).Background(bg),
	}
}

// Dragging reports whether a drag is currently in progress in this list.
func (s *ListState) Dragging() bool { return s.active }

func (s *ListState) begin(id ID, index, dx, dy int) {
	s.active = true
	s.dragID = id
	s.source = index
	s.target = index
	s.grabDX = dx
	s.grabDY = dy
}

func (s *ListState) reset() {
	s.active = false
	s.dragID = ""
	s.source = 0
	s.target = 0
	s.grabDX = 0
	s.grabDY = 0
}

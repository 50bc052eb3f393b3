package dnd_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldnd/dnd"
)

type entry struct {
	name string
}

func (e *entry) DragID() dnd.ID { return dnd.ID(e.name) }

func entries(names ...string) []dnd.Item {
	items := make([]dnd.Item, len(names))
	for i, n := range names {
		items[i] = &entry{name: n}
	}
	return items
}

func names(items []dnd.Item) string {
	out := ""
	for _, it := range items {
		out += string(it.(*entry).name)
	}
	return out
}

// drawRow draws one single-row item: handle at columns 0-1, name after.
func drawRow(p *dnd.Painter, h dnd.Handle, index int, item dnd.Item, x, y int) int {
	h.Draw(p, x, y, "≡ ", tcell.StyleDefault)
	p.DrawText(x+2, y, string(item.(*entry).name), tcell.StyleDefault)
	return 1
}

// renderFrame runs one List call with the given pointer state. Items are laid
// out from row 0, one row each, handles at column 0.
func renderFrame(state *dnd.ListState, items []dnd.Item, pt dnd.Pointer) dnd.Response {
	f := dnd.NewFrame(40, 20)
	f.Pointer = pt
	return state.List(f, f.Main, dnd.Rect{X: 0, Y: 0, W: 20, H: 20}, items, drawRow)
}

func TestEmptySequenceReportsNoActivity(t *testing.T) {
	state := &dnd.ListState{}
	resp := renderFrame(state, nil, dnd.Pointer{X: 0, Y: 0, Pressed: true, Held: true})
	if resp.Kind != dnd.ResponseNone {
		t.Fatalf("expected no activity on empty sequence, got %v", resp.Kind)
	}
}

func TestDragPastSiblingMidpointCompletes(t *testing.T) {
	state := &dnd.ListState{}
	items := entries("a", "b", "c", "d")

	// press on a's handle
	resp := renderFrame(state, items, dnd.Pointer{X: 0, Y: 0, Pressed: true, Held: true})
	if resp.Kind != dnd.ResponseDragging || resp.Source != 0 || resp.Target != 0 {
		t.Fatalf("expected drag start on a, got %+v", resp)
	}

	// drag downward; hold until the preview settles past c
	for i := 0; i < 3; i++ {
		resp = renderFrame(state, items, dnd.Pointer{X: 0, Y: 3, Held: true})
	}
	if resp.Kind != dnd.ResponseDragging || resp.Target != 2 {
		t.Fatalf("expected live target 2, got %+v", resp)
	}

	// release
	resp = renderFrame(state, items, dnd.Pointer{X: 0, Y: 3, Released: true})
	if resp.Kind != dnd.ResponseCompleted || resp.Source != 0 || resp.Target != 2 {
		t.Fatalf("expected Completed(0,2), got %+v", resp)
	}
	if state.Dragging() {
		t.Fatalf("state should be idle after release")
	}

	if err := dnd.Move(resp.Source, resp.Target, items); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := names(items); got != "bcad" {
		t.Fatalf("expected bcad after applying shift, got %s", got)
	}
}

func TestDragUpward(t *testing.T) {
	state := &dnd.ListState{}
	items := entries("a", "b", "c", "d")

	resp := renderFrame(state, items, dnd.Pointer{X: 0, Y: 3, Pressed: true, Held: true})
	if resp.Kind != dnd.ResponseDragging || resp.Source != 3 {
		t.Fatalf("expected drag start on d, got %+v", resp)
	}
	for i := 0; i < 3; i++ {
		resp = renderFrame(state, items, dnd.Pointer{X: 0, Y: 0, Held: true})
	}
	resp = renderFrame(state, items, dnd.Pointer{X: 0, Y: 0, Released: true})
	if resp.Kind != dnd.ResponseCompleted || resp.Source != 3 || resp.Target != 0 {
		t.Fatalf("expected Completed(3,0), got %+v", resp)
	}
	if err := dnd.Move(resp.Source, resp.Target, items); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := names(items); got != "dabc" {
		t.Fatalf("expected dabc, got %s", got)
	}
}

func TestReleaseWithoutMovingReportsNoReorder(t *testing.T) {
	state := &dnd.ListState{}
	items := entries("a", "b", "c")

	resp := renderFrame(state, items, dnd.Pointer{X: 0, Y: 1, Pressed: true, Held: true})
	if resp.Kind != dnd.ResponseDragging || resp.Source != 1 {
		t.Fatalf("expected drag start on b, got %+v", resp)
	}
	resp = renderFrame(state, items, dnd.Pointer{X: 0, Y: 1, Released: true})
	if resp.Kind != dnd.ResponseNone {
		t.Fatalf("expected no reorder on in-place release, got %+v", resp)
	}
	if got := names(items); got != "abc" {
		t.Fatalf("sequence changed: %s", got)
	}
}

func TestPressOutsideHandleDoesNotStartDrag(t *testing.T) {
	state := &dnd.ListState{}
	items := entries("a", "b", "c")

	// column 5 is item body, not handle
	resp := renderFrame(state, items, dnd.Pointer{X: 5, Y: 0, Pressed: true, Held: true})
	if resp.Kind != dnd.ResponseNone || state.Dragging() {
		t.Fatalf("body press must not start a drag, got %+v", resp)
	}
}

func TestCaptureLossCancelsDrag(t *testing.T) {
	state := &dnd.ListState{}
	items := entries("a", "b", "c")

	renderFrame(state, items, dnd.Pointer{X: 0, Y: 0, Pressed: true, Held: true})
	// neither held nor released: the host lost pointer capture
	resp := renderFrame(state, items, dnd.Pointer{X: 0, Y: 2})
	if resp.Kind != dnd.ResponseNone || state.Dragging() {
		t.Fatalf("expected silent cancellation, got %+v", resp)
	}
}

func TestSecondPressIgnoredWhileDragActive(t *testing.T) {
	state := &dnd.ListState{}
	items := entries("a", "b", "c")

	renderFrame(state, items, dnd.Pointer{X: 0, Y: 0, Pressed: true, Held: true})
	// a stray press on c's handle while the drag of a is active
	resp := renderFrame(state, items, dnd.Pointer{X: 0, Y: 2, Pressed: true, Held: true})
	if resp.Kind != dnd.ResponseDragging || resp.Source != 0 {
		t.Fatalf("active drag must keep its item, got %+v", resp)
	}
}

func TestDragReanchorsByIdentityAfterHostReorder(t *testing.T) {
	state := &dnd.ListState{}
	items := entries("a", "b", "c")

	renderFrame(state, items, dnd.Pointer{X: 0, Y: 1, Pressed: true, Held: true})

	// host reorders mid-gesture; b is now at index 2
	reordered := entries("c", "a", "b")
	resp := renderFrame(state, reordered, dnd.Pointer{X: 0, Y: 1, Held: true})
	if resp.Kind != dnd.ResponseDragging || resp.Source != 2 {
		t.Fatalf("expected source re-anchored to 2, got %+v", resp)
	}

	// dragged identity vanished entirely: drag is dropped
	resp = renderFrame(state, entries("a", "c"), dnd.Pointer{X: 0, Y: 1, Held: true})
	if resp.Kind != dnd.ResponseNone || state.Dragging() {
		t.Fatalf("expected drag cancelled when identity vanished, got %+v", resp)
	}
}

func TestTargetStaysInRange(t *testing.T) {
	state := &dnd.ListState{}
	items := entries("a", "b", "c", "d")

	renderFrame(state, items, dnd.Pointer{X: 0, Y: 0, Pressed: true, Held: true})
	// drag far below the list
	var resp dnd.Response
	for i := 0; i < 4; i++ {
		resp = renderFrame(state, items, dnd.Pointer{X: 0, Y: 15, Held: true})
	}
	if resp.Target < 0 || resp.Target > len(items)-1 {
		t.Fatalf("target out of range: %+v", resp)
	}
	resp = renderFrame(state, items, dnd.Pointer{X: 0, Y: 15, Released: true})
	if resp.Kind != dnd.ResponseCompleted || resp.Target != 3 {
		t.Fatalf("expected clamp to last slot, got %+v", resp)
	}
}

// parentItem carries a nested child list, exercising recursive composition.
type parentItem struct {
	name  string
	child *dnd.ListState
	items []dnd.Item
	resp  dnd.Response
}

func (p *parentItem) DragID() dnd.ID { return dnd.ID(p.name) }

func TestNestedDragLeavesParentUntouched(t *testing.T) {
	child := &dnd.ListState{}
	parents := []dnd.Item{
		&entry{name: "d"},
		&parentItem{
			name:  "e",
			child: child,
			items: entries("e_a", "e_b", "e_c", "e_d"),
		},
		&entry{name: "f"},
	}

	parentState := &dnd.ListState{}
	renderOnce := func(pt dnd.Pointer) (parentResp, childResp dnd.Response) {
		f := dnd.NewFrame(40, 30)
		f.Pointer = pt
		pi := parents[1].(*parentItem)
		draw := func(p *dnd.Painter, h dnd.Handle, index int, item dnd.Item, x, y int) int {
			h.Draw(p, x, y, "≡ ", tcell.StyleDefault)
			inner, ok := item.(*parentItem)
			if !ok {
				return 1
			}
			area := dnd.Rect{X: x + 2, Y: y + 1, W: 10, H: len(inner.items)}
			inner.resp = inner.child.List(f, p, area, inner.items, drawRow)
			return 1 + len(inner.items)
		}
		parentResp = parentState.List(f, f.Main, dnd.Rect{X: 0, Y: 0, W: 20, H: 30}, parents, draw)
		return parentResp, pi.resp
	}

	// Layout: d row0; e row1; e_a..e_d rows 2-5 (handles at column 2); f row6.
	// Press on e_a's handle.
	pResp, cResp := renderOnce(dnd.Pointer{X: 2, Y: 2, Pressed: true, Held: true})
	if pResp.Kind != dnd.ResponseNone {
		t.Fatalf("parent saw drag activity: %+v", pResp)
	}
	if cResp.Kind != dnd.ResponseDragging || cResp.Source != 0 {
		t.Fatalf("expected child drag start on e_a, got %+v", cResp)
	}

	// Drag past e_c's midpoint and release.
	for i := 0; i < 3; i++ {
		pResp, cResp = renderOnce(dnd.Pointer{X: 2, Y: 5, Held: true})
	}
	pResp, cResp = renderOnce(dnd.Pointer{X: 2, Y: 5, Released: true})
	if pResp.Kind != dnd.ResponseNone {
		t.Fatalf("nested drag leaked into parent list: %+v", pResp)
	}
	if cResp.Kind != dnd.ResponseCompleted || cResp.Source != 0 || cResp.Target != 2 {
		t.Fatalf("expected child Completed(0,2), got %+v", cResp)
	}

	pi := parents[1].(*parentItem)
	if err := dnd.Move(cResp.Source, cResp.Target, pi.items); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := names(pi.items); got != "e_be_ce_ae_d" {
		t.Fatalf("unexpected child order: %s", got)
	}
	if parents[0].(*entry).name != "d" || parents[2].(*entry).name != "f" {
		t.Fatalf("parent ordering changed")
	}
}

package dnd_test

import (
	"testing"

	"github.com/framegrace/texeldnd/dnd"
)

func TestMoveNoOpWhenSourceEqualsTarget(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	for i := range items {
		if err := dnd.Move(i, i, items); err != nil {
			t.Fatalf("Move(%d,%d): %v", i, i, err)
		}
	}
	if got := join(items); got != "abcd" {
		t.Fatalf("expected abcd, got %s", got)
	}
}

func TestMoveScenario(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	if err := dnd.Move(0, 2, items); err != nil {
		t.Fatalf("Move(0,2): %v", err)
	}
	if got := join(items); got != "bcad" {
		t.Fatalf("expected bcad, got %s", got)
	}
	if err := dnd.Move(2, 0, items); err != nil {
		t.Fatalf("Move(2,0): %v", err)
	}
	if got := join(items); got != "abcd" {
		t.Fatalf("expected abcd after inverse, got %s", got)
	}
}

func TestMoveInvertibleForAllPairs(t *testing.T) {
	const n = 6
	for src := 0; src < n; src++ {
		for dst := 0; dst < n; dst++ {
			items := seq(n)
			if err := dnd.Move(src, dst, items); err != nil {
				t.Fatalf("Move(%d,%d): %v", src, dst, err)
			}
			if err := dnd.Move(dst, src, items); err != nil {
				t.Fatalf("inverse Move(%d,%d): %v", dst, src, err)
			}
			for i, v := range items {
				if v != i {
					t.Fatalf("Move(%d,%d) not inverted: %v", src, dst, items)
				}
			}
		}
	}
}

func TestMovePreservesElements(t *testing.T) {
	const n = 5
	for src := 0; src < n; src++ {
		for dst := 0; dst < n; dst++ {
			items := seq(n)
			if err := dnd.Move(src, dst, items); err != nil {
				t.Fatalf("Move(%d,%d): %v", src, dst, err)
			}
			seen := make([]bool, n)
			for _, v := range items {
				if v < 0 || v >= n || seen[v] {
					t.Fatalf("Move(%d,%d) lost or duplicated elements: %v", src, dst, items)
				}
				seen[v] = true
			}
			// dragged element lands exactly at the target slot
			if items[dst] != src {
				t.Fatalf("Move(%d,%d): expected %d at %d, got %v", src, dst, src, dst, items)
			}
		}
	}
}

func TestMoveOutOfRange(t *testing.T) {
	items := []string{"a", "b"}
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		if err := dnd.Move(pair[0], pair[1], items); err == nil {
			t.Fatalf("Move(%d,%d) on 2 items: expected error", pair[0], pair[1])
		}
	}
	if got := join(items); got != "ab" {
		t.Fatalf("failed Move mutated the slice: %s", got)
	}
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func join(items []string) string {
	out := ""
	for _, s := range items {
		out += s
	}
	return out
}

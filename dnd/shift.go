package dnd

import "fmt"

// Move removes the element at source and reinserts it at target, rotating the
// subrange between the two positions by one slot. The relative order of all
// other elements is preserved. A no-op when source == target.
//
//	items := []string{"a", "b", "c", "d"}
//	Move(0, 2, items) // items is now [b c a d]
//	Move(2, 0, items) // items is now [a b c d] again
func Move[T any](source, target int, items []T) error {
	n := len(items)
	if source < 0 || source >= n || target < 0 || target >= n {
		return fmt.Errorf("move %d -> %d out of range for %d items", source, target, n)
	}
	if source == target {
		return nil
	}
	if source < target {
		s := items[source : target+1]
		tmp := s[0]
		copy(s, s[1:])
		s[len(s)-1] = tmp
	} else {
		s := items[target : source+1]
		tmp := s[len(s)-1]
		copy(s[1:], s)
		s[0] = tmp
	}
	return nil
}

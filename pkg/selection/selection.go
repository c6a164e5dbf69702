// Package selection tracks which item of an ordered sequence is "open" as a
// plain index, and keeps that index pointing at the same item while the
// sequence is mutated.
package selection

import (
	"fmt"

	"tableflip.dev/groupdo/pkg/todo"
)

// Selection is either empty or an index into a sequence. The zero value is
// empty.
type Selection struct {
	index int
	valid bool
	kind  todo.Kind
}

// Of returns an empty selection over items of kind. Kind only names the
// level in out-of-range errors; the zero value reports groups.
func Of(kind todo.Kind) Selection {
	return Selection{kind: kind}
}

// At returns a selection pointing at i without validation. Use Select when
// the sequence length is known.
func At(i int) Selection {
	if i < 0 {
		return Selection{}
	}
	return Selection{index: i, valid: true}
}

// Index returns the selected index and whether there is one.
func (s Selection) Index() (int, bool) {
	return s.index, s.valid
}

// Is reports whether i is the selected index.
func (s Selection) Is(i int) bool {
	return s.valid && s.index == i
}

// Int returns the index, or -1 when nothing is selected.
func (s Selection) Int() int {
	if !s.valid {
		return -1
	}
	return s.index
}

func (s Selection) String() string {
	if !s.valid {
		return "none"
	}
	return fmt.Sprintf("%d", s.index)
}

// Select points the selection at i, failing when i is not in [0, count).
func (s *Selection) Select(i, count int) error {
	if i < 0 || i >= count {
		kind := s.kind
		if kind == "" {
			kind = todo.KindGroup
		}
		return &todo.IndexError{Kind: kind, Index: i, Len: count}
	}
	s.index, s.valid = i, true
	return nil
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.index, s.valid = 0, false
}

// OnRemoved adjusts for the removal of the item at removed.
func (s *Selection) OnRemoved(removed int) {
	if !s.valid {
		return
	}
	switch {
	case removed == s.index:
		s.Clear()
	case removed < s.index:
		s.index--
	}
}

// OnInserted adjusts for an insertion at i (everything at or after i shifts up).
func (s *Selection) OnInserted(i int) {
	if s.valid && i <= s.index {
		s.index++
	}
}

// OnMoved adjusts for a remove-then-insert move from -> to, where to indexes
// the sequence after removal.
func (s *Selection) OnMoved(from, to int) {
	if !s.valid {
		return
	}
	cur := s.index
	switch {
	case cur == from:
		s.index = to
	case from < cur && cur <= to:
		s.index--
	case to <= cur && cur < from:
		s.index++
	}
}

// Validate clears the selection if it no longer fits a sequence of count
// items. It reports whether the selection changed.
func (s *Selection) Validate(count int) bool {
	if s.valid && (s.index < 0 || s.index >= count) {
		s.Clear()
		return true
	}
	return false
}

package selection

import (
	"errors"
	"testing"

	"tableflip.dev/groupdo/pkg/todo"
)

func TestSelect(t *testing.T) {
	var s Selection
	if _, ok := s.Index(); ok {
		t.Fatalf("zero selection should be empty")
	}
	if err := s.Select(2, 3); err != nil {
		t.Fatalf("select: %v", err)
	}
	if i, ok := s.Index(); !ok || i != 2 {
		t.Fatalf("expected 2, got %d %v", i, ok)
	}
	if err := s.Select(3, 3); !errors.Is(err, todo.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if !s.Is(2) {
		t.Fatalf("failed select changed the selection")
	}
	s.Clear()
	if s.Int() != -1 {
		t.Fatalf("expected cleared selection")
	}
}

func TestSelectReportsKind(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want todo.Kind
	}{
		{name: "zero value", sel: Selection{}, want: todo.KindGroup},
		{name: "tasks", sel: Of(todo.KindTask), want: todo.KindTask},
		{name: "subtasks", sel: Of(todo.KindSubTask), want: todo.KindSubTask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Select(4, 2)
			var ie *todo.IndexError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *todo.IndexError, got %v", err)
			}
			if ie.Kind != tt.want || ie.Index != 4 || ie.Len != 2 {
				t.Fatalf("got %+v, want kind %s", ie, tt.want)
			}
		})
	}

	s := Of(todo.KindTask)
	_ = s.Select(0, 1)
	s.Clear()
	var ie *todo.IndexError
	if err := s.Select(9, 1); !errors.As(err, &ie) || ie.Kind != todo.KindTask {
		t.Fatalf("Clear dropped the kind: %v", err)
	}
}

func TestOnRemoved(t *testing.T) {
	tests := []struct {
		name    string
		current int
		removed int
		want    int
	}{
		{name: "removed selected", current: 2, removed: 2, want: -1},
		{name: "removed before", current: 2, removed: 0, want: 1},
		{name: "removed after", current: 2, removed: 3, want: 2},
		{name: "scenario 4", current: 2, removed: 0, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := At(tt.current)
			s.OnRemoved(tt.removed)
			if got := s.Int(); got != tt.want {
				t.Fatalf("want %d, got %d", tt.want, got)
			}
		})
	}

	var empty Selection
	empty.OnRemoved(0)
	if empty.Int() != -1 {
		t.Fatalf("empty selection should stay empty")
	}
}

func TestOnMoved(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		from, to int
		want     int
	}{
		{name: "selected moves down", current: 1, from: 1, to: 3, want: 3},
		{name: "selected moves up", current: 3, from: 3, to: 0, want: 0},
		{name: "from before, to at current", current: 2, from: 0, to: 2, want: 1},
		{name: "from before, to after", current: 2, from: 0, to: 4, want: 1},
		{name: "from after, to at current", current: 2, from: 4, to: 2, want: 3},
		{name: "from after, to before", current: 2, from: 4, to: 0, want: 3},
		{name: "both before", current: 3, from: 0, to: 1, want: 3},
		{name: "both after", current: 1, from: 2, to: 4, want: 1},
		{name: "no-op move", current: 1, from: 1, to: 1, want: 1},
		{name: "from before, to before", current: 4, from: 2, to: 3, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := At(tt.current)
			s.OnMoved(tt.from, tt.to)
			if got := s.Int(); got != tt.want {
				t.Fatalf("want %d, got %d", tt.want, got)
			}
		})
	}
}

// The selected item must keep pointing at the same element for every move.
func TestOnMovedTracksElement(t *testing.T) {
	const n = 5
	for cur := 0; cur < n; cur++ {
		for from := 0; from < n; from++ {
			for to := 0; to < n; to++ {
				seq := []int{0, 1, 2, 3, 4}
				item := seq[from]
				rest := append(append([]int{}, seq[:from]...), seq[from+1:]...)
				moved := append(append(append([]int{}, rest[:to]...), item), rest[to:]...)

				s := At(cur)
				s.OnMoved(from, to)
				if moved[s.Int()] != cur {
					t.Fatalf("cur=%d from=%d to=%d: selection at %d holds %d", cur, from, to, s.Int(), moved[s.Int()])
				}
			}
		}
	}
}

func TestOnInsertedAndValidate(t *testing.T) {
	s := At(1)
	s.OnInserted(1)
	if s.Int() != 2 {
		t.Fatalf("expected 2, got %d", s.Int())
	}
	s.OnInserted(3)
	if s.Int() != 2 {
		t.Fatalf("insert after selection should not move it")
	}
	if !s.Validate(2) || s.Int() != -1 {
		t.Fatalf("expected selection cleared by Validate")
	}
}

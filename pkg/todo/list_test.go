package todo

import (
	"errors"
	"sort"
	"testing"
)

func groupNames(l *List) []string {
	names := make([]string, 0, len(l.Groups))
	for _, g := range l.Groups {
		names = append(names, g.Name)
	}
	return names
}

func taskNames(g Group) []string {
	names := make([]string, 0, len(g.Tasks))
	for _, t := range g.Tasks {
		names = append(names, t.Name)
	}
	return names
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func listOf(names ...string) *List {
	l := New()
	for _, n := range names {
		_, _ = l.AddGroup(n)
	}
	return l
}

func TestAddGroupsAppends(t *testing.T) {
	l := New()
	a, err := l.AddGroup("A")
	if err != nil {
		t.Fatalf("add A: %v", err)
	}
	b, err := l.AddGroup("B")
	if err != nil {
		t.Fatalf("add B: %v", err)
	}
	if a != 0 || b != 1 {
		t.Fatalf("expected indices 0,1 got %d,%d", a, b)
	}
	want := &List{Groups: []Group{{Name: "A", Tasks: []Task{}}, {Name: "B", Tasks: []Task{}}}}
	if !l.Equal(want) {
		t.Fatalf("unexpected list %+v", l)
	}
}

func TestAddUsesDefaultNames(t *testing.T) {
	l := New()
	g, _ := l.AddGroup("  ")
	ti, err := l.AddTask(g, "")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := l.AddSubTask(g, ti, ""); err != nil {
		t.Fatalf("add subtask: %v", err)
	}
	if l.Groups[0].Name != DefaultGroupName {
		t.Fatalf("group name %q", l.Groups[0].Name)
	}
	task := l.Groups[0].Tasks[0]
	if task.Name != DefaultTaskName || task.Urgency != UrgencyLow {
		t.Fatalf("unexpected task %+v", task)
	}
	if task.SubTasks[0].Name != DefaultSubTaskName {
		t.Fatalf("subtask name %q", task.SubTasks[0].Name)
	}
}

func TestAddTaskInvalidGroup(t *testing.T) {
	l := listOf("A")
	for _, g := range []int{-1, 1, 5} {
		if _, err := l.AddTask(g, "x"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("group %d: expected ErrIndexOutOfRange, got %v", g, err)
		}
	}
	if len(l.Groups[0].Tasks) != 0 {
		t.Fatalf("failed add mutated list")
	}
}

func TestMoveGroupScenario(t *testing.T) {
	l := listOf("A", "B", "C")
	moved, err := l.MoveGroup(0, 2)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if !moved {
		t.Fatalf("expected move to report a change")
	}
	if got := groupNames(l); !sameStrings(got, []string{"B", "C", "A"}) {
		t.Fatalf("got %v", got)
	}
}

func TestMoveSameIndexIsNoop(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for i := 0; i < n; i++ {
			l := listOf([]string{"A", "B", "C", "D"}[:n]...)
			before := l.Clone()
			moved, err := l.MoveGroup(i, i)
			if err != nil {
				t.Fatalf("n=%d i=%d: %v", n, i, err)
			}
			if moved {
				t.Fatalf("n=%d i=%d: no-op move reported a change", n, i)
			}
			if !l.Equal(before) {
				t.Fatalf("n=%d i=%d: list changed", n, i)
			}
		}
	}
}

func TestMovePreservesElements(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	for from := range names {
		for to := range names {
			l := listOf(names...)
			if _, err := l.MoveGroup(from, to); err != nil {
				t.Fatalf("move %d->%d: %v", from, to, err)
			}
			got := groupNames(l)
			if len(got) != len(names) {
				t.Fatalf("move %d->%d: count %d", from, to, len(got))
			}
			if got[to] != names[from] {
				t.Fatalf("move %d->%d: expected %s at %d, got %v", from, to, names[from], to, got)
			}
			sorted := append([]string(nil), got...)
			sort.Strings(sorted)
			if !sameStrings(sorted, names) {
				t.Fatalf("move %d->%d: multiset changed: %v", from, to, got)
			}
		}
	}
}

func TestMoveOutOfRange(t *testing.T) {
	l := listOf("A", "B")
	cases := []struct{ from, to int }{{-1, 0}, {2, 0}, {0, 2}, {0, -1}}
	for _, c := range cases {
		if _, err := l.MoveGroup(c.from, c.to); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("move %d->%d: expected ErrIndexOutOfRange, got %v", c.from, c.to, err)
		}
	}
	if got := groupNames(l); !sameStrings(got, []string{"A", "B"}) {
		t.Fatalf("failed move mutated list: %v", got)
	}
}

func TestDeleteThenInsertRoundTrip(t *testing.T) {
	for i := 0; i < 3; i++ {
		l := listOf("A", "B", "C")
		_, _ = l.AddTask(i, "t")
		before := l.Clone()
		removed, err := l.DeleteGroup(i)
		if err != nil {
			t.Fatalf("delete %d: %v", i, err)
		}
		if err := l.InsertGroup(i, removed); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if !l.Equal(before) {
			t.Fatalf("round trip at %d changed list", i)
		}
	}
}

func TestDeleteTaskScenario(t *testing.T) {
	l := listOf("A")
	for _, n := range []string{"t1", "t2", "t3"} {
		if _, err := l.AddTask(0, n); err != nil {
			t.Fatalf("add %s: %v", n, err)
		}
	}
	removed, err := l.DeleteTask(0, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Name != "t2" {
		t.Fatalf("removed %q", removed.Name)
	}
	if got := taskNames(l.Groups[0]); !sameStrings(got, []string{"t1", "t3"}) {
		t.Fatalf("got %v", got)
	}
}

func TestTaskAndSubTaskMutations(t *testing.T) {
	l := listOf("A")
	ti, _ := l.AddTask(0, "t")
	_, _ = l.AddSubTask(0, ti, "s1")
	_, _ = l.AddSubTask(0, ti, "s2")

	if err := l.SetUrgency(0, ti, UrgencyHigh); err != nil {
		t.Fatalf("urgency: %v", err)
	}
	if err := l.SetUrgency(0, ti, Urgency(9)); !errors.Is(err, ErrUrgencyOutOfRange) {
		t.Fatalf("expected ErrUrgencyOutOfRange, got %v", err)
	}
	if err := l.SetCompleted(0, ti, true); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := l.SetExpanded(0, ti, true); err != nil {
		t.Fatalf("expand: %v", err)
	}
	if err := l.SetSubTaskCompleted(0, ti, 1, true); err != nil {
		t.Fatalf("complete subtask: %v", err)
	}
	if _, err := l.MoveSubTask(0, ti, 1, 0); err != nil {
		t.Fatalf("move subtask: %v", err)
	}
	if err := l.RenameSubTask(0, ti, 0, "first"); err != nil {
		t.Fatalf("rename subtask: %v", err)
	}

	task := l.Groups[0].Tasks[0]
	if task.Urgency != UrgencyHigh || !task.Completed || !task.Expanded {
		t.Fatalf("unexpected task flags %+v", task)
	}
	want := []SubTask{{Name: "first", Completed: true}, {Name: "s1"}}
	if len(task.SubTasks) != 2 || task.SubTasks[0] != want[0] || task.SubTasks[1] != want[1] {
		t.Fatalf("unexpected subtasks %+v", task.SubTasks)
	}
	if _, err := l.DeleteSubTask(0, ti, 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	l := listOf("A")
	ti, _ := l.AddTask(0, "t")
	_, _ = l.AddSubTask(0, ti, "s")
	cp := l.Clone()
	cp.Groups[0].Tasks[0].SubTasks[0].Name = "changed"
	cp.Groups[0].Name = "changed"
	if l.Groups[0].Name != "A" || l.Groups[0].Tasks[0].SubTasks[0].Name != "s" {
		t.Fatalf("clone shares memory with original")
	}
}

func TestParseUrgency(t *testing.T) {
	tests := []struct {
		in      string
		want    Urgency
		wantErr bool
	}{
		{in: "0", want: UrgencyLow},
		{in: "2", want: UrgencyHigh},
		{in: "Critical", want: UrgencyCritical},
		{in: " medium ", want: UrgencyMedium},
		{in: "4", wantErr: true},
		{in: "urgent", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUrgency(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUrgencyOutOfRange) {
					t.Fatalf("expected ErrUrgencyOutOfRange, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %v, %v", got, err)
			}
		})
	}
	if UrgencyCritical.Next() != UrgencyLow || UrgencyLow.Prev() != UrgencyCritical {
		t.Fatalf("urgency cycling does not wrap")
	}
}

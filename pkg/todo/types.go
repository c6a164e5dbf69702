// Package todo defines the grouped to-do hierarchy (groups, tasks, subtasks)
// and the index-based operations that mutate it.
package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Default names given to items created without one.
const (
	DefaultGroupName   = "New Group"
	DefaultTaskName    = "New Task"
	DefaultSubTaskName = "New Subtask"
)

// Urgency is the dropdown level of a task, 0..UrgencyLevels-1.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

// UrgencyLevels is the number of valid urgency values.
const UrgencyLevels = 4

var ErrUrgencyOutOfRange = errors.New("todo: urgency out of range")

var urgencyNames = [UrgencyLevels]string{"low", "medium", "high", "critical"}

// Urgencies returns every valid level in ascending order.
func Urgencies() []Urgency {
	out := make([]Urgency, 0, UrgencyLevels)
	for i := 0; i < UrgencyLevels; i++ {
		out = append(out, Urgency(i))
	}
	return out
}

// Valid reports whether u is one of the known levels.
func (u Urgency) Valid() bool {
	return u >= 0 && int(u) < UrgencyLevels
}

func (u Urgency) String() string {
	if !u.Valid() {
		return fmt.Sprintf("urgency(%d)", int(u))
	}
	return urgencyNames[u]
}

// Next returns the following level, wrapping to low after critical.
func (u Urgency) Next() Urgency {
	return Urgency((int(u) + 1) % UrgencyLevels)
}

// Prev returns the previous level, wrapping to critical before low.
func (u Urgency) Prev() Urgency {
	return Urgency((int(u) + UrgencyLevels - 1) % UrgencyLevels)
}

// ParseUrgency accepts either the numeric level or its name.
func ParseUrgency(raw string) (Urgency, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if n, err := strconv.Atoi(v); err == nil {
		u := Urgency(n)
		if !u.Valid() {
			return UrgencyLow, fmt.Errorf("%w: %d", ErrUrgencyOutOfRange, n)
		}
		return u, nil
	}
	for i, name := range urgencyNames {
		if name == v {
			return Urgency(i), nil
		}
	}
	return UrgencyLow, fmt.Errorf("%w: %q", ErrUrgencyOutOfRange, raw)
}

// SubTask is a completable child of a Task.
type SubTask struct {
	Name      string
	Completed bool
}

// Task is an orderable work item inside a Group.
type Task struct {
	Name      string
	Urgency   Urgency
	Completed bool
	// Expanded controls whether subtasks are shown; it never affects order.
	Expanded bool
	SubTasks []SubTask
}

// Group is a named, ordered container of tasks.
type Group struct {
	Name  string
	Tasks []Task
}

// List is the persisted root: an ordered sequence of groups.
type List struct {
	Groups []Group
}

// New returns an empty list.
func New() *List {
	return &List{Groups: []Group{}}
}

// Clone returns a deep copy of l. Mutating the copy never affects l.
func (l *List) Clone() *List {
	if l == nil {
		return New()
	}
	out := &List{Groups: make([]Group, len(l.Groups))}
	for i, g := range l.Groups {
		out.Groups[i] = g.clone()
	}
	return out
}

func (g Group) clone() Group {
	cp := Group{Name: g.Name, Tasks: make([]Task, len(g.Tasks))}
	for i, t := range g.Tasks {
		cp.Tasks[i] = t.clone()
	}
	return cp
}

func (t Task) clone() Task {
	cp := t
	cp.SubTasks = append([]SubTask(nil), t.SubTasks...)
	if cp.SubTasks == nil {
		cp.SubTasks = []SubTask{}
	}
	return cp
}

// Equal reports whether two lists hold the same structure and values.
func (l *List) Equal(other *List) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.Groups) != len(other.Groups) {
		return false
	}
	for i := range l.Groups {
		if !l.Groups[i].Equal(other.Groups[i]) {
			return false
		}
	}
	return true
}

// Equal compares names and tasks in order.
func (g Group) Equal(other Group) bool {
	if g.Name != other.Name || len(g.Tasks) != len(other.Tasks) {
		return false
	}
	for i := range g.Tasks {
		if !g.Tasks[i].Equal(other.Tasks[i]) {
			return false
		}
	}
	return true
}

// Equal compares every field, including subtasks in order.
func (t Task) Equal(other Task) bool {
	if t.Name != other.Name || t.Urgency != other.Urgency ||
		t.Completed != other.Completed || t.Expanded != other.Expanded ||
		len(t.SubTasks) != len(other.SubTasks) {
		return false
	}
	for i := range t.SubTasks {
		if t.SubTasks[i] != other.SubTasks[i] {
			return false
		}
	}
	return true
}

// Done counts completed tasks in the group.
func (g Group) Done() int {
	n := 0
	for _, t := range g.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

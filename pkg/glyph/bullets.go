package glyph

import (
	"fmt"

	"tableflip.dev/groupdo/pkg/todo"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	// Urgency marks glyphs that annotate urgency rather than task state.
	Urgency bool
	Order   int
}

const (
	escape     = "\x1b"
	resetCode  = 0
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

type Bullet int

const (
	Task Bullet = iota
	Completed
	SubTask
	SubTaskCompleted
	Expanded
	Collapsed
	Group
	Dragging
)

var bullets = []Glyph{
	{Key: "+", Symbol: "●", Meaning: "task", Order: 0},
	{Key: "x", Symbol: "✘", Meaning: "task completed", Order: 1},
	{Key: "-", Symbol: "⁃", Meaning: "subtask", Order: 2},
	{Key: "X", Symbol: "✓", Meaning: "subtask completed", Order: 3},
	{Key: "e", Symbol: "▾", Meaning: "subtasks shown", Order: 4},
	{Key: "e", Symbol: "▸", Meaning: "subtasks hidden", Order: 5},
	{Key: "g", Symbol: "■", Meaning: "group", Order: 6},
	{Key: "", Symbol: "≡", Meaning: "being dragged", Order: 7},
}

var urgencies = [todo.UrgencyLevels]Glyph{
	{Key: "0", Symbol: " ", Meaning: "low urgency", Urgency: true, Order: 0},
	{Key: "1", Symbol: "!", Meaning: "medium urgency", Urgency: true, Order: 1},
	{Key: "2", Symbol: "‼", Meaning: "high urgency", Urgency: true, Order: 2},
	{Key: "3", Symbol: "✷", Meaning: "critical urgency", Urgency: true, Order: 3},
}

// DefaultBullets returns the task-state glyphs in legend order.
func DefaultBullets() []Glyph {
	return append([]Glyph(nil), bullets...)
}

// DefaultUrgencies returns one glyph per urgency level.
func DefaultUrgencies() []Glyph {
	return append([]Glyph(nil), urgencies[:]...)
}

func (g Glyph) String() string {
	return g.Symbol
}

func (b Bullet) Glyph() Glyph {
	if b < 0 || int(b) >= len(bullets) {
		return Glyph{Symbol: " "}
	}
	return bullets[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

// ForUrgency returns the marker for level; unknown levels get the low marker.
func ForUrgency(level todo.Urgency) Glyph {
	if !level.Valid() {
		return urgencies[todo.UrgencyLow]
	}
	return urgencies[level]
}

// ForTask picks the state bullet for a task.
func ForTask(t todo.Task) Bullet {
	if t.Completed {
		return Completed
	}
	return Task
}

// ForSubTask picks the state bullet for a subtask.
func ForSubTask(s todo.SubTask) Bullet {
	if s.Completed {
		return SubTaskCompleted
	}
	return SubTask
}

// ForExpansion picks the disclosure marker. Tasks without subtasks get a
// blank so columns stay aligned.
func ForExpansion(t todo.Task) string {
	switch {
	case len(t.SubTasks) == 0:
		return " "
	case t.Expanded:
		return Expanded.String()
	default:
		return Collapsed.String()
	}
}

type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }

package tui

import (
	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/reorder"
	"tableflip.dev/groupdo/pkg/todo"
)

// Screen rows. Items start below the title and the column headers; the
// status line and the help line take the bottom two rows.
const (
	firstItemRow = 2
	footerRows   = 2
	minLeftWidth = 16
	maxLeftWidth = 40
)

// row is one rendered line. Task rows carry the height of the whole block
// (the task plus its visible subtasks) so their center sits mid-block.
type row struct {
	kind  todo.Kind
	group int
	task  int
	sub   int
	y     int
	h     int
}

func (r row) center(x0, x1 int) reorder.Position {
	return reorder.Position{
		X: float64(x0+x1) / 2,
		Y: float64(r.y) + float64(r.h)/2,
	}
}

// layout is where the committed (not previewed) list was drawn. It is the
// drag Geometry and the mouse hit-tester.
type layout struct {
	width, height int
	leftWidth     int
	groups        []row
	tasks         []row
	openTask      int
}

var _ app.Geometry = layout{}

func leftWidthFor(width int) int {
	w := width / 3
	if w < minLeftWidth {
		w = minLeftWidth
	}
	if w > maxLeftWidth {
		w = maxLeftWidth
	}
	if w > width {
		w = width
	}
	return w
}

func bodyRows(height int) int {
	n := height - firstItemRow - footerRows
	if n < 1 {
		return 1
	}
	return n
}

func buildLayout(snap app.Snapshot, width, height, groupOffset, taskOffset int) layout {
	l := layout{
		width:     width,
		height:    height,
		leftWidth: leftWidthFor(width),
		openTask:  snap.Task.Int(),
	}
	if snap.List == nil {
		return l
	}
	for i := range snap.List.Groups {
		l.groups = append(l.groups, row{kind: todo.KindGroup, group: i, task: -1, sub: -1, y: firstItemRow + i - groupOffset, h: 1})
	}

	grp, g, ok := snap.OpenGroup()
	if !ok {
		return l
	}
	y := firstItemRow - taskOffset
	for t, task := range grp.Tasks {
		h := 1
		if task.Expanded {
			h += len(task.SubTasks)
		}
		l.tasks = append(l.tasks, row{kind: todo.KindTask, group: g, task: t, sub: -1, y: y, h: h})
		if task.Expanded {
			for s := range task.SubTasks {
				l.tasks = append(l.tasks, row{kind: todo.KindSubTask, group: g, task: t, sub: s, y: y + 1 + s, h: 1})
			}
		}
		y += h
	}
	return l
}

func (l layout) taskX() (int, int) {
	return l.leftWidth + 1, l.width
}

// Position implements app.Geometry.
func (l layout) Position(kind todo.Kind, index int) (reorder.Position, bool) {
	switch kind {
	case todo.KindGroup:
		if index < 0 || index >= len(l.groups) {
			return reorder.Position{}, false
		}
		return l.groups[index].center(0, l.leftWidth), true
	case todo.KindTask:
		x0, x1 := l.taskX()
		for _, r := range l.tasks {
			if r.kind == todo.KindTask && r.task == index {
				return r.center(x0, x1), true
			}
		}
	case todo.KindSubTask:
		x0, x1 := l.taskX()
		for _, r := range l.tasks {
			if r.kind == todo.KindSubTask && r.task == l.openTask && r.sub == index {
				return r.center(x0, x1), true
			}
		}
	}
	return reorder.Position{}, false
}

// hit returns the row drawn at screen cell x, y.
func (l layout) hit(x, y int) (row, bool) {
	if y < firstItemRow || y >= firstItemRow+bodyRows(l.height) {
		return row{}, false
	}
	rows := l.groups
	if x > l.leftWidth {
		rows = l.tasks
	} else if x == l.leftWidth {
		return row{}, false
	}
	for _, r := range rows {
		if r.y == y {
			return r, true
		}
	}
	return row{}, false
}

// taskRowIndex finds the display index of the row for (kind, task, sub).
func (l layout) taskRowIndex(kind todo.Kind, task, sub int) int {
	for i, r := range l.tasks {
		if r.kind == kind && r.task == task && (kind == todo.KindTask || r.sub == sub) {
			return i
		}
	}
	return -1
}

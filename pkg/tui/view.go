package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/glyph"
	"tableflip.dev/groupdo/pkg/todo"
)

const (
	cursorMark = "›"
	ellipsis   = "…"
)

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = truncate.StringWithTail(s, uint(w), ellipsis)
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// order returns the display order of n items: the drag preview when a drag
// of kind is active, otherwise identity.
func (m *Model) order(kind todo.Kind, n int) []int {
	d := m.snap.Drag
	if d.Active && d.Kind == kind && len(d.Order) == n {
		return d.Order
	}
	return identity(n)
}

func (m *Model) dragging(kind todo.Kind, index int) bool {
	d := m.snap.Drag
	return d.Active && d.Kind == kind && d.Origin == index
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	left := m.layout.leftWidth
	right := width - left - 1
	rows := bodyRows(m.height)

	lines := make([]string, 0, m.height)
	lines = append(lines, m.titleLine(width))
	lines = append(lines, m.headerLine(left, right))

	if m.help.ShowAll {
		body := strings.Split(m.help.View(m.keys), "\n")
		for i := 0; i < rows; i++ {
			s := ""
			if i < len(body) {
				s = body[i]
			}
			lines = append(lines, s)
		}
	} else {
		groups := m.groupLines(left, rows)
		tasks := m.taskLines(right, rows)
		div := m.theme.Panel.Divider.Render("│")
		for i := 0; i < rows; i++ {
			lines = append(lines, groups[i]+div+tasks[i])
		}
	}

	lines = append(lines, m.statusLine(width))
	lines = append(lines, m.helpLine(width))
	return strings.Join(lines, "\n")
}

func (m *Model) titleLine(width int) string {
	title := m.theme.Panel.Title.Render("groupdo")
	rep := app.BuildReport(m.snap.List)
	summary := fmt.Sprintf("  %d groups  %d/%d done", len(rep.Sections), rep.Completed, rep.Total)
	return title + m.theme.Footer.Status.Render(fit(summary, width-lipgloss.Width(title)))
}

func (m *Model) headerLine(left, right int) string {
	gs, ts := m.theme.Panel.Header, m.theme.Panel.Header
	if m.focus == focusGroups {
		gs = m.theme.Panel.ActiveHeader
	} else {
		ts = m.theme.Panel.ActiveHeader
	}
	tasks := "Tasks"
	if grp, _, ok := m.snap.OpenGroup(); ok {
		tasks = "Tasks: " + grp.Name
	}
	return gs.Render(fit("Groups", left)) + m.theme.Panel.Divider.Render("│") + ts.Render(fit(tasks, right))
}

func (m *Model) groupLines(w, rows int) []string {
	out := make([]string, 0, rows)
	var groups []todo.Group
	if m.snap.List != nil {
		groups = m.snap.List.Groups
	}
	if len(groups) == 0 {
		out = append(out, m.theme.List.Empty.Render(fit(" No groups. Press a to add one.", w)))
	}
	for i, g := range m.order(todo.KindGroup, len(groups)) {
		if i < m.groupOffset {
			continue
		}
		if len(out) == rows {
			break
		}
		grp := groups[g]
		mark := " "
		if m.focus == focusGroups && g == m.groupCursor {
			mark = cursorMark
		}
		bullet := glyph.Group.String()
		if m.dragging(todo.KindGroup, g) {
			bullet = glyph.Dragging.String()
		}
		text := fmt.Sprintf("%s %s %s (%d/%d)", mark, bullet, grp.Name, grp.Done(), len(grp.Tasks))

		style := m.theme.List.Item
		switch {
		case m.dragging(todo.KindGroup, g):
			style = m.theme.List.Dragging
		case m.focus == focusGroups && g == m.groupCursor:
			style = m.theme.List.Selected
		case m.snap.Group.Is(g):
			style = m.theme.List.Cursor
		}
		out = append(out, style.Render(fit(text, w)))
	}
	return padLines(out, w, rows)
}

func (m *Model) taskLines(w, rows int) []string {
	grp, _, ok := m.snap.OpenGroup()
	if !ok {
		return padLines([]string{m.theme.List.Empty.Render(fit(" Open a group with enter.", w))}, w, rows)
	}
	if len(grp.Tasks) == 0 {
		return padLines([]string{m.theme.List.Empty.Render(fit(" No tasks. Press a to add one.", w))}, w, rows)
	}

	var cur row
	if m.focus == focusTasks && m.rowCursor >= 0 && m.rowCursor < len(m.layout.tasks) {
		cur = m.layout.tasks[m.rowCursor]
	}
	openTask := m.snap.Task.Int()

	var all []string
	for _, t := range m.order(todo.KindTask, len(grp.Tasks)) {
		task := grp.Tasks[t]
		all = append(all, m.taskLine(task, t, cur, w))
		if !task.Expanded {
			continue
		}
		subs := identity(len(task.SubTasks))
		if t == openTask {
			subs = m.order(todo.KindSubTask, len(task.SubTasks))
		}
		for _, s := range subs {
			all = append(all, m.subTaskLine(task.SubTasks[s], t, s, t == openTask, cur, w))
		}
	}
	if m.rowOffset < len(all) {
		all = all[m.rowOffset:]
	} else {
		all = nil
	}
	if len(all) > rows {
		all = all[:rows]
	}
	return padLines(all, w, rows)
}

func (m *Model) taskLine(task todo.Task, t int, cur row, w int) string {
	selected := cur.kind == todo.KindTask && cur.task == t
	mark := " "
	if selected {
		mark = cursorMark
	}
	bullet := glyph.ForTask(task).String()
	dragged := m.dragging(todo.KindTask, t)
	if dragged {
		bullet = glyph.Dragging.String()
	}
	text := fmt.Sprintf("%s %s %s %s %s", mark, glyph.ForUrgency(task.Urgency), bullet, glyph.ForExpansion(task), task.Name)
	if n := len(task.SubTasks); n > 0 && !task.Expanded {
		text += fmt.Sprintf(" [%d]", n)
	}

	style := m.theme.UrgencyStyle(task.Urgency)
	switch {
	case dragged:
		style = m.theme.List.Dragging
	case selected:
		style = m.theme.List.Selected
	case task.Completed:
		style = m.theme.List.Done
	case m.snap.Task.Is(t):
		style = m.theme.List.Cursor
	}
	return style.Render(fit(text, w))
}

func (m *Model) subTaskLine(st todo.SubTask, t, s int, open bool, cur row, w int) string {
	selected := cur.kind == todo.KindSubTask && cur.task == t && cur.sub == s
	mark := " "
	if selected {
		mark = cursorMark
	}
	bullet := glyph.ForSubTask(st).String()
	dragged := open && m.dragging(todo.KindSubTask, s)
	if dragged {
		bullet = glyph.Dragging.String()
	}
	text := fmt.Sprintf("%s       %s %s", mark, bullet, st.Name)

	style := m.theme.List.SubTask
	switch {
	case dragged:
		style = m.theme.List.Dragging
	case selected:
		style = m.theme.List.Selected
	case st.Completed:
		style = m.theme.List.Done
	}
	return style.Render(fit(text, w))
}

func (m *Model) statusLine(width int) string {
	switch {
	case m.snap.Err != nil:
		return m.theme.Footer.Error.Render(fit(" "+m.snap.Err.Error(), width))
	case m.statusErr:
		return m.theme.Footer.Error.Render(fit(" "+m.status, width))
	case m.snap.Drag.Active:
		return m.theme.Footer.Status.Render(fit(" Release to drop, esc to cancel", width))
	}
	return m.theme.Footer.Status.Render(fit(" "+m.status, width))
}

func (m *Model) helpLine(width int) string {
	if m.mode == modeRename {
		return m.input.View()
	}
	if m.help.ShowAll {
		return m.theme.Footer.Help.Render(fit(" ? to close help", width))
	}
	return m.help.View(m.keys)
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func padLines(lines []string, w, rows int) []string {
	blank := strings.Repeat(" ", max(w, 0))
	for len(lines) < rows {
		lines = append(lines, blank)
	}
	return lines
}

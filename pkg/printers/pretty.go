package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/groupdo/pkg/glyph"
	"tableflip.dev/groupdo/pkg/todo"
)

type PrettyPrint struct {
	// ShowIndex prefixes every item with its index path, e.g. 1.2.
	ShowIndex bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("00.00.00  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowIndex {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, done, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d/%d", done, count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task done")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks done")
	}
}

func (pp *PrettyPrint) index(parts ...int) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	ids := make([]string, len(parts))
	for i, p := range parts {
		ids[i] = fmt.Sprint(p)
	}
	id := strings.Join(ids, ".")
	pad := len(spacing) - len(id)
	if pad < 1 {
		pad = 1
	}
	_, _ = y.Fprint(pp.out(), id+strings.Repeat(" ", pad))
}

// urgencyColor maps levels to terminal colors; low stays uncolored.
var urgencyColor = [todo.UrgencyLevels]*color.Color{
	color.New(),
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgRed, color.Bold),
}

// Group prints one group and its tasks. Subtasks are printed when the task
// is expanded or when all is set.
func (pp *PrettyPrint) Group(g int, grp todo.Group, all bool) {
	if pp.ShowIndex {
		pp.index(g)
	}
	pp.TitleWithCount(grp.Name, grp.Done(), len(grp.Tasks))

	if len(grp.Tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowIndex {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	faint := color.New(color.Faint)
	for t, task := range grp.Tasks {
		if pp.ShowIndex {
			pp.index(g, t)
		}
		c := urgencyColor[todo.UrgencyLow]
		if task.Urgency.Valid() {
			c = urgencyColor[task.Urgency]
		}
		name := task.Name
		if task.Completed {
			c = faint
			name = glyph.Strike(name)
		}
		_, _ = c.Fprintf(pp.out(), "%s %s %s %s\n", glyph.ForUrgency(task.Urgency), glyph.ForTask(task), glyph.ForExpansion(task), name)

		if !task.Expanded && !all {
			continue
		}
		for s, st := range task.SubTasks {
			if pp.ShowIndex {
				pp.index(g, t, s)
			}
			sc := color.New()
			name := st.Name
			if st.Completed {
				sc = faint
				name = glyph.Strike(name)
			}
			_, _ = sc.Fprintf(pp.out(), "      %s %s\n", glyph.ForSubTask(st), name)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// List prints every group in order.
func (pp *PrettyPrint) List(l *todo.List, all bool) {
	if l == nil || len(l.Groups) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), "no groups\n")
		return
	}
	for g, grp := range l.Groups {
		pp.Group(g, grp, all)
	}
}

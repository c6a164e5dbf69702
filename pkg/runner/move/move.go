// Package move reorders an item among its siblings.
package move

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/printers"
	"tableflip.dev/groupdo/pkg/todo"
)

type Move struct {
	Kind todo.Kind
	// Group and Task locate the parent for tasks and subtasks.
	Group   int
	Task    int
	From    int
	To      int
	Service *app.Service
	Out     io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}

	var (
		moved bool
		err   error
	)
	switch n.Kind {
	case todo.KindGroup:
		moved, err = n.Service.MoveGroup(ctx, n.From, n.To)
	case todo.KindTask:
		moved, err = n.Service.MoveTask(ctx, n.Group, n.From, n.To)
	case todo.KindSubTask:
		moved, err = n.Service.MoveSubTask(ctx, n.Group, n.Task, n.From, n.To)
	default:
		return fmt.Errorf("can not move %q", n.Kind)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowIndex: true, Out: n.Out}
	if !moved {
		out := n.Out
		if out == nil {
			out = color.Output
		}
		_, _ = color.New(color.Faint).Fprintln(out, "already there, nothing moved")
		return nil
	}
	l := n.Service.List()
	if n.Kind == todo.KindGroup {
		pp.List(l, false)
		return nil
	}
	grp, err := l.Group(n.Group)
	if err != nil {
		return err
	}
	pp.Group(n.Group, *grp, n.Kind == todo.KindSubTask)
	return nil
}

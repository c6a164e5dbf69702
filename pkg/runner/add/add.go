// Package add creates groups, tasks and subtasks from the command line.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/printers"
	"tableflip.dev/groupdo/pkg/todo"
)

type Add struct {
	Kind  todo.Kind
	Group int
	Task  int
	// Name may be empty; the item then gets the default name for its kind.
	Name    string
	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	var err error
	group := n.Group
	switch n.Kind {
	case todo.KindGroup:
		group, err = n.Service.AddGroup(ctx, n.Name)
	case todo.KindTask:
		_, err = n.Service.AddTask(ctx, n.Group, n.Name)
	case todo.KindSubTask:
		_, err = n.Service.AddSubTask(ctx, n.Group, n.Task, n.Name)
	default:
		return fmt.Errorf("can not add %q", n.Kind)
	}
	if err != nil {
		return err
	}

	grp, err := n.Service.List().Group(group)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowIndex: true, Out: n.Out}
	pp.Group(group, *grp, false)
	return nil
}

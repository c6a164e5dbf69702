// Package rename renames one item.
package rename

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/printers"
	"tableflip.dev/groupdo/pkg/todo"
)

type Rename struct {
	Kind    todo.Kind
	Group   int
	Task    int
	SubTask int
	Name    string
	Service *app.Service
	Out     io.Writer
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename, no service")
	}
	if n.Name == "" {
		return errors.New("can not rename to an empty name")
	}

	var err error
	switch n.Kind {
	case todo.KindGroup:
		err = n.Service.RenameGroup(ctx, n.Group, n.Name)
	case todo.KindTask:
		err = n.Service.RenameTask(ctx, n.Group, n.Task, n.Name)
	case todo.KindSubTask:
		err = n.Service.RenameSubTask(ctx, n.Group, n.Task, n.SubTask, n.Name)
	default:
		return fmt.Errorf("can not rename %q", n.Kind)
	}
	if err != nil {
		return err
	}

	grp, err := n.Service.List().Group(n.Group)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowIndex: true, Out: n.Out}
	pp.Group(n.Group, *grp, n.Kind == todo.KindSubTask)
	return nil
}

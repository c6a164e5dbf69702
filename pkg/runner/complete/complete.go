// Package complete marks tasks and subtasks done, or not done.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/printers"
)

// NoSubTask targets the task itself.
const NoSubTask = -1

type Complete struct {
	Group   int
	Task    int
	SubTask int
	// Undo marks the item not done.
	Undo    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	var err error
	if n.SubTask == NoSubTask {
		err = n.Service.SetCompleted(ctx, n.Group, n.Task, !n.Undo)
	} else {
		err = n.Service.SetSubTaskCompleted(ctx, n.Group, n.Task, n.SubTask, !n.Undo)
	}
	if err != nil {
		return err
	}

	grp, err := n.Service.List().Group(n.Group)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowIndex: true, Out: n.Out}
	pp.Group(n.Group, *grp, n.SubTask != NoSubTask)
	return nil
}

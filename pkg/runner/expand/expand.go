// Package expand shows or hides the subtasks of a task.
package expand

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/printers"
)

type Expand struct {
	Group    int
	Task     int
	Collapse bool
	Service  *app.Service
	Out      io.Writer
}

func (n *Expand) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not expand, no service")
	}
	if err := n.Service.SetExpanded(ctx, n.Group, n.Task, !n.Collapse); err != nil {
		return err
	}
	grp, err := n.Service.List().Group(n.Group)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowIndex: true, Out: n.Out}
	pp.Group(n.Group, *grp, false)
	return nil
}

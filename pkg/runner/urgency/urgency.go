// Package urgency sets the urgency level of a task.
package urgency

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/printers"
	"tableflip.dev/groupdo/pkg/todo"
)

type Urgency struct {
	Group   int
	Task    int
	Level   todo.Urgency
	Service *app.Service
	Out     io.Writer
}

func (n *Urgency) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set urgency, no service")
	}
	if err := n.Service.SetUrgency(ctx, n.Group, n.Task, n.Level); err != nil {
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

// Package get prints the list, or one group of it.
package get

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/printers"
	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/todo"
)

// AllGroups selects every group.
const AllGroups = -1

type Get struct {
	// Group is the group index to print, or AllGroups.
	Group int
	// All prints subtasks of collapsed tasks too.
	All       bool
	ShowIndex bool
	// JSON prints the stored document form instead of the pretty view.
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	l := n.Service.List()
	if n.Group != AllGroups {
		grp, err := l.Group(n.Group)
		if err != nil {
			return err
		}
		l = &todo.List{Groups: []todo.Group{*grp}}
	}

	if n.JSON {
		b, err := store.Encode(l)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{ShowIndex: n.ShowIndex, Out: out}
	pp.NewLine()
	if n.Group != AllGroups {
		pp.Group(n.Group, l.Groups[0], n.All)
		return nil
	}
	pp.List(l, n.All)
	return nil
}

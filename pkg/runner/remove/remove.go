// Package remove deletes one item, asking first unless told not to.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/todo"
)

// Confirm asks the user to approve label. It returns false when declined.
type Confirm func(label string) (bool, error)

// PromptConfirm asks on the terminal with promptui.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type Remove struct {
	Kind    todo.Kind
	Group   int
	Task    int
	SubTask int
	// Yes skips the confirmation.
	Yes     bool
	Confirm Confirm
	Service *app.Service
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	name, err := n.name()
	if err != nil {
		return err
	}
	if !n.Yes {
		confirm := n.Confirm
		if confirm == nil {
			confirm = PromptConfirm
		}
		ok, err := confirm(fmt.Sprintf("Delete %s %q", n.Kind, name))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(out, "not deleted")
			return nil
		}
	}

	switch n.Kind {
	case todo.KindGroup:
		_, err = n.Service.DeleteGroup(ctx, n.Group)
	case todo.KindTask:
		_, err = n.Service.DeleteTask(ctx, n.Group, n.Task)
	default:
		err = n.Service.DeleteSubTask(ctx, n.Group, n.Task, n.SubTask)
	}
	if err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintf(out, "deleted %s %q\n", n.Kind, name)
	return nil
}

func (n *Remove) name() (string, error) {
	l := n.Service.List()
	switch n.Kind {
	case todo.KindGroup:
		g, err := l.Group(n.Group)
		if err != nil {
			return "", err
		}
		return g.Name, nil
	case todo.KindTask:
		t, err := l.Task(n.Group, n.Task)
		if err != nil {
			return "", err
		}
		return t.Name, nil
	case todo.KindSubTask:
		s, err := l.SubTask(n.Group, n.Task, n.SubTask)
		if err != nil {
			return "", err
		}
		return s.Name, nil
	}
	return "", fmt.Errorf("can not delete %q", n.Kind)
}

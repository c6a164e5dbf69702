package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/todo"
)

var kinds = []todo.Kind{todo.KindGroup, todo.KindTask, todo.KindSubTask}

// addTargetArgs wires the flags that locate an item of kind. With own set the
// item's own index flag is added too; otherwise only its parents'.
func addTargetArgs(cmd *cobra.Command, kind todo.Kind, t *options.TargetOptions, own bool) {
	switch kind {
	case todo.KindGroup:
		if own {
			options.AddGroupArg(cmd, t)
		}
	case todo.KindTask:
		options.AddGroupArg(cmd, t)
		if own {
			options.AddTaskArg(cmd, t)
		}
	case todo.KindSubTask:
		options.AddGroupArg(cmd, t)
		options.AddTaskArg(cmd, t)
		if own {
			options.AddSubTaskArg(cmd, t)
		}
	}
}

// resolveGroup replaces --group with the user's choice when -i is set.
func resolveGroup(cmd *cobra.Command, i *options.InteractiveOptions, svc *app.Service, t *options.TargetOptions) error {
	if !i.Interactive {
		return nil
	}
	g, err := i.PickGroup(cmd, groupNames(svc))
	if err != nil {
		return err
	}
	t.Group = g
	return nil
}

// run opens the list, calls do and reports its error the way --json asks.
func run(cmd *cobra.Command, do func(ctx context.Context, s *session) error) error {
	cmd.SilenceUsage = true
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, nil)
	if err != nil {
		return output.HandleError(err)
	}
	defer s.Close()
	return output.HandleError(do(ctx, s))
}

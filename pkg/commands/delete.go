package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/runner/remove"
	"tableflip.dev/groupdo/pkg/todo"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"remove", "rm"},
		Short:   "Delete a group, task or subtask.",
		Example: `
groupdo delete task -g 0 -t 3
groupdo delete group -g 2 -y
`,
	}
	for _, kind := range kinds {
		addDeleteKind(cmd, kind)
	}
	topLevel.AddCommand(cmd)
}

func addDeleteKind(parent *cobra.Command, kind todo.Kind) {
	t := &options.TargetOptions{}
	i := &options.InteractiveOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: "Delete a " + string(kind) + " and everything in it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				if err := resolveGroup(cmd, i, s.svc, t); err != nil {
					return err
				}
				r := remove.Remove{
					Kind:    kind,
					Group:   t.Group,
					Task:    t.Task,
					SubTask: t.SubTask,
					Yes:     yes,
					Service: s.svc,
				}
				return r.Do(ctx)
			})
		},
	}

	addTargetArgs(cmd, kind, t, true)
	options.InteractiveArgs(cmd, i)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	parent.AddCommand(cmd)
}

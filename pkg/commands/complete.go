package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/runner/complete"
	"tableflip.dev/groupdo/pkg/todo"
)

func addComplete(topLevel *cobra.Command) {
	t := &options.TargetOptions{}
	i := &options.InteractiveOptions{}
	undo := false

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"completed", "done"},
		Short:   "Mark a task or subtask done.",
		Example: `
groupdo complete -g 0 -t 1
groupdo complete -g 0 -t 1 -s 0
groupdo complete -g 0 -t 1 --undo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				if err := resolveGroup(cmd, i, s.svc, t); err != nil {
					return err
				}
				c := complete.Complete{
					Group:   t.Group,
					Task:    t.Task,
					SubTask: t.SubTask,
					Undo:    undo,
					Service: s.svc,
				}
				return c.Do(ctx)
			})
		},
	}

	addTargetArgs(cmd, todo.KindTask, t, true)
	cmd.Flags().IntVarP(&t.SubTask, "subtask", "s", complete.NoSubTask,
		"Index of a subtask to complete instead of the task.")
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark it not done.")
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

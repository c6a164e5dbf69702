package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/runner/expand"
	"tableflip.dev/groupdo/pkg/todo"
)

func addExpand(topLevel *cobra.Command) {
	t := &options.TargetOptions{}
	i := &options.InteractiveOptions{}
	collapse := false

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Show the subtasks of a task in the list, or hide them with --collapse.",
		Example: `
groupdo expand -g 0 -t 1
groupdo expand -g 0 -t 1 --collapse
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				if err := resolveGroup(cmd, i, s.svc, t); err != nil {
					return err
				}
				e := expand.Expand{
					Group:    t.Group,
					Task:     t.Task,
					Collapse: collapse,
					Service:  s.svc,
				}
				return e.Do(ctx)
			})
		},
	}

	addTargetArgs(cmd, todo.KindTask, t, true)
	cmd.Flags().BoolVar(&collapse, "collapse", false, "Hide the subtasks instead.")
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

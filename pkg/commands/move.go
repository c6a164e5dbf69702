package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/runner/move"
	"tableflip.dev/groupdo/pkg/todo"
)

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a group, task or subtask to another position.",
		Long: options.Wrap80("Move an item among its siblings. <to> is the index the " +
			"item ends up at, counted after it has been taken out of the list."),
		Example: `
groupdo move group 0 2
groupdo move task -g 1 3 0
`,
	}
	for _, kind := range kinds {
		addMoveKind(cmd, kind)
	}
	topLevel.AddCommand(cmd)
}

func addMoveKind(parent *cobra.Command, kind todo.Kind) {
	t := &options.TargetOptions{}
	i := &options.InteractiveOptions{}
	var from, to int

	cmd := &cobra.Command{
		Use:   string(kind) + " <from> <to>",
		Short: "Move a " + string(kind) + ".",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("requires <from> and <to>, got %d args", len(args))
			}
			var err error
			if from, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("bad <from>: %w", err)
			}
			if to, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("bad <to>: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				if kind != todo.KindGroup {
					if err := resolveGroup(cmd, i, s.svc, t); err != nil {
						return err
					}
				}
				m := move.Move{
					Kind:    kind,
					Group:   t.Group,
					Task:    t.Task,
					From:    from,
					To:      to,
					Service: s.svc,
				}
				return m.Do(ctx)
			})
		},
	}

	addTargetArgs(cmd, kind, t, false)
	if kind != todo.KindGroup {
		options.InteractiveArgs(cmd, i)
	}
	parent.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/runner/rename"
	"tableflip.dev/groupdo/pkg/todo"
)

func addRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a group, task or subtask.",
		Example: `
groupdo rename group -g 1 Errands
groupdo rename task -g 1 -t 0 Post the letters
`,
	}
	for _, kind := range kinds {
		addRenameKind(cmd, kind)
	}
	topLevel.AddCommand(cmd)
}

func addRenameKind(parent *cobra.Command, kind todo.Kind) {
	t := &options.TargetOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   string(kind) + " <name>",
		Short: "Rename a " + string(kind) + ".",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a new name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				if err := resolveGroup(cmd, i, s.svc, t); err != nil {
					return err
				}
				r := rename.Rename{
					Kind:    kind,
					Group:   t.Group,
					Task:    t.Task,
					SubTask: t.SubTask,
					Name:    strings.Join(args, " "),
					Service: s.svc,
				}
				return r.Do(ctx)
			})
		},
	}

	addTargetArgs(cmd, kind, t, true)
	options.InteractiveArgs(cmd, i)
	parent.AddCommand(cmd)
}

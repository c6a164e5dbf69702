package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/runner/add"
	"tableflip.dev/groupdo/pkg/todo"
)

var addExamples = map[todo.Kind]string{
	todo.KindGroup: `
groupdo add group Groceries
`,
	todo.KindTask: `
groupdo add task -g 0 Buy milk
groupdo add task -i Buy milk
`,
	todo.KindSubTask: `
groupdo add subtask -g 0 -t 2 Oat milk
`,
}

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a group, task or subtask.",
		Example: `
groupdo add group Groceries
groupdo add task -g 0 Buy milk
`,
	}
	for _, kind := range kinds {
		addAddKind(cmd, kind)
	}
	topLevel.AddCommand(cmd)
}

func addAddKind(parent *cobra.Command, kind todo.Kind) {
	t := &options.TargetOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     string(kind) + " [name]",
		Short:   "Add a " + string(kind) + ". Without a name it gets a default one.",
		Example: addExamples[kind],
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				if err := resolveGroup(cmd, i, s.svc, t); err != nil {
					return err
				}
				a := add.Add{
					Kind:    kind,
					Group:   t.Group,
					Task:    t.Task,
					Name:    strings.Join(args, " "),
					Service: s.svc,
				}
				return a.Do(ctx)
			})
		},
	}

	addTargetArgs(cmd, kind, t, false)
	if kind != todo.KindGroup {
		options.InteractiveArgs(cmd, i)
	}
	parent.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	t := &options.TargetOptions{}
	io := &options.IndexOptions{}
	i := &options.InteractiveOptions{}
	all := false

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "Print the list, or one group of it.",
		Example: `
groupdo get
groupdo get -g 1 --all
groupdo get --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("group") {
				t.Group = get.AllGroups
			}
			return run(cmd, func(ctx context.Context, s *session) error {
				if err := resolveGroup(cmd, i, s.svc, t); err != nil {
					return err
				}
				g := get.Get{
					Group:     t.Group,
					All:       all,
					ShowIndex: io.ShowIndex,
					JSON:      output.JSON,
					Service:   s.svc,
				}
				return g.Do(ctx)
			})
		},
	}

	options.AddGroupArg(cmd, t)
	options.AddShowIndexArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also print subtasks of collapsed tasks.")
	_ = cmd.RegisterFlagCompletionFunc("group", groupCompletions)

	topLevel.AddCommand(cmd)
}

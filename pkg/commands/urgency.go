package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
	"tableflip.dev/groupdo/pkg/runner/urgency"
	"tableflip.dev/groupdo/pkg/todo"
)

func addUrgency(topLevel *cobra.Command) {
	t := &options.TargetOptions{}
	i := &options.InteractiveOptions{}
	var level todo.Urgency

	validArgs := make([]string, 0, todo.UrgencyLevels)
	long := strings.Builder{}
	long.WriteString("Set the urgency of a task.\n\nLevels:\n")
	for _, u := range todo.Urgencies() {
		long.WriteString(fmt.Sprintf("%d: %s\n", int(u), u))
		validArgs = append(validArgs, u.String())
	}

	cmd := &cobra.Command{
		Use:   "urgency <level>",
		Short: "Set the urgency of a task.",
		Long:  long.String(),
		Example: `
groupdo urgency -g 0 -t 2 high
groupdo urgency -g 0 -t 2 0
`,
		ValidArgs: validArgs,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires one urgency level")
			}
			var err error
			level, err = todo.ParseUrgency(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				if err := resolveGroup(cmd, i, s.svc, t); err != nil {
					return err
				}
				u := urgency.Urgency{
					Group:   t.Group,
					Task:    t.Task,
					Level:   level,
					Service: s.svc,
				}
				return u.Do(ctx)
			})
		},
	}

	addTargetArgs(cmd, todo.KindTask, t, true)
	options.InteractiveArgs(cmd, i)
	topLevel.AddCommand(cmd)
}

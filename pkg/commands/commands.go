package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "groupdo",
		Short: options.Wrap80("Grouped to-do lists with drag-and-drop reordering, in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&output.JSON, "json", false, "Output as JSON.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addRename(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addUrgency(topLevel)
	addComplete(topLevel)
	addExpand(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

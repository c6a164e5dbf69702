package options

import (
	"github.com/spf13/cobra"
)

// TargetOptions locates an item by index: a group, a task in a group, or a
// subtask in a task. Indexes start at 0, as printed by get --show-index.
type TargetOptions struct {
	Group   int
	Task    int
	SubTask int
}

func AddGroupArg(cmd *cobra.Command, o *TargetOptions) {
	cmd.Flags().IntVarP(&o.Group, "group", "g", 0,
		"Index of the group.")
}

func AddTaskArg(cmd *cobra.Command, o *TargetOptions) {
	cmd.Flags().IntVarP(&o.Task, "task", "t", 0,
		"Index of the task within the group.")
}

func AddSubTaskArg(cmd *cobra.Command, o *TargetOptions) {
	cmd.Flags().IntVarP(&o.SubTask, "subtask", "s", 0,
		"Index of the subtask within the task.")
}

// IndexOptions
type IndexOptions struct {
	ShowIndex bool
}

func AddShowIndexArgs(cmd *cobra.Command, o *IndexOptions) {
	cmd.Flags().BoolVarP(&o.ShowIndex, "show-index", "k", false,
		"Show the index of each group, task and subtask.")
}

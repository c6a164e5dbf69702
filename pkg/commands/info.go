package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration, where the list is stored and what is in it.",
		Example: `
groupdo info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				n := info.Info{
					Config:  s.cfg,
					Service: s.svc,
				}
				return n.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tableflip.dev/groupdo/pkg/runner/ui"
	"tableflip.dev/groupdo/pkg/store"
)

// uiLogFile keeps logs off the screen while the UI owns it.
const uiLogFile = "groupdo.log"

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
groupdo ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.BasePath(), 0o755); err != nil {
				return err
			}
			f, err := os.OpenFile(filepath.Join(cfg.BasePath(), uiLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return err
			}
			defer f.Close()

			s, err := openSession(ctx, f)
			if err != nil {
				return err
			}
			defer s.Close()

			i := ui.UI{Service: s.svc, Logger: s.log}
			return i.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}

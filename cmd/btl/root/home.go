package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/tui"
)

func newHomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Open the interactive home screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunHome(ctx, a.svc, cmd.OutOrStdout())
		},
	}

	return cmd
}

package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !force {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" This erases your XP, streaks, history, reflections and shield sessions."))
				fmt.Fprintln(out, ui.Muted.Render("Run again with --force to confirm."))
				return nil
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.ClearAllData(ctx); err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" Fresh start. Your journey begins again at level 1."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation")

	return cmd
}

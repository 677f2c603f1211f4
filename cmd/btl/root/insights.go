package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

func newInsightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show patterns from your recent quest history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			insights, err := a.svc.PatternInsights(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Insights"))
			for _, in := range insights {
				fmt.Fprintf(out, "%s %s\n  %s\n", ui.IconStar, ui.Key.Render(in.Title), in.Message)
			}
			return nil
		},
	}

	return cmd
}

package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/engine"
	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

func newReflectCmd() *cobra.Command {
	var in engine.ReflectionInput

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Record a daily check-in (mood, energy, stress)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if _, err := a.svc.SaveReflection(ctx, in); err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Good.Render(ui.IconHeart+" Reflection saved. Thanks for checking in."))
			if in.Stress >= 8 {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconShield+" That's a lot of stress. Shield mode is here if you need it: btl shield start"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&in.Mood, "mood", 5, "Mood, 0-10")
	cmd.Flags().IntVar(&in.Energy, "energy", 5, "Energy, 0-10")
	cmd.Flags().IntVar(&in.Stress, "stress", 5, "Stress, 0-10")
	cmd.Flags().StringVar(&in.Grateful, "grateful", "", "Something you're grateful for")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&in.Date, "date", "", "Date to record (YYYY-MM-DD, default today)")

	return cmd
}

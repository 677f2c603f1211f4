package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

// Grounding steps shown during a shield session. Short on purpose; this
// screen is for someone who is overwhelmed right now.
var shieldSteps = []string{
	"Breathe in for 4 counts, hold for 4, out for 6. Repeat 3 times.",
	"Name 5 things you can see, 4 you can touch, 3 you can hear.",
	"Drink a glass of water, slowly.",
	"This feeling is temporary. You have gotten through it before.",
}

func newShieldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shield",
		Short: "Crisis support mode",
	}
	cmd.AddCommand(newShieldStartCmd(), newShieldEndCmd())
	return cmd
}

func newShieldStartCmd() *cobra.Command {
	var reason string
	var speak bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a shield session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			id, err := a.svc.StartShield(ctx, reason)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconShield, "Shield mode is on"))
			fmt.Fprintln(out, ui.Muted.Render("No quests. No pressure. Just a few small steps."))
			fmt.Fprintln(out, "")
			for i, step := range shieldSteps {
				fmt.Fprintf(out, "%d. %s\n", i+1, step)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("When you're ready: btl shield end %d --rating <0-10>", id)))

			if speak {
				a.narrator.Speak("Shield mode is on. Breathe in for four counts, hold for four, out for six.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "What triggered this (optional)")
	cmd.Flags().BoolVar(&speak, "speak", false, "Read the grounding steps aloud")

	return cmd
}

func newShieldEndCmd() *cobra.Command {
	var minutes int
	var rating int

	cmd := &cobra.Command{
		Use:   "end <session-id>",
		Short: "End a shield session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if err := a.svc.EndShield(ctx, id, minutes*60, rating); err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Good.Render(ui.IconHeart+" Shield session ended. You rode it out. That counts."))
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "How long the session lasted, in minutes")
	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "How helpful it was, 0-10")

	return cmd
}

package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

func newEasierCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "easier <quest-id>",
		Short: "Swap a quest for a gentler one in the same category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quest id %q", args[0])
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			q, err := a.svc.AdaptQuestOnFailure(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconHeart, "No problem. Try this instead:"))
			fmt.Fprintln(out, ui.Panel.Render(fmt.Sprintf(
				"%s %s\n%s\n\n%s\n\n%s %d   %s ~%d min   %s +%d xp",
				ui.IconQuest, ui.Key.Render(q.Title),
				ui.Muted.Render(q.Description),
				q.Instructions,
				ui.Muted.Render("difficulty"), q.Difficulty,
				ui.Muted.Render("time"), q.DurationMinutes,
				ui.Muted.Render("reward"), q.XPValue,
			)))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Complete with: btl done %d", q.ID)))
			return nil
		},
	}

	return cmd
}

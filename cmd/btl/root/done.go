package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

func newDoneCmd() *cobra.Command {
	var bonus bool
	var minutes int
	var speak bool

	cmd := &cobra.Command{
		Use:   "done <quest-id>",
		Short: "Mark a quest as completed",
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

			quest, err := a.svc.QuestRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if quest == nil {
				return fmt.Errorf("quest %d not found", id)
			}

			res, err := a.svc.RecordCompletion(ctx, id, quest.XPValue, minutes*60, !bonus)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s %s\n", ui.IconDone, ui.Good.Render("Quest complete:"), quest.Title)
			fmt.Fprintf(out, "%s +%d xp\n", ui.IconBolt, res.XPAwarded)
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s You reached level %d!\n", ui.IconTrophy, ui.BadgeLevelUp, res.LevelAfter)
			}
			fmt.Fprintf(out, "%s Streak: %d day(s)", ui.IconFlame, res.Streak)
			if res.Streak == res.BestStreak && res.Streak > 1 {
				fmt.Fprintf(out, " %s", ui.Gold.Render("(personal best)"))
			}
			fmt.Fprintln(out, "")

			if speak {
				msg := fmt.Sprintf("Quest complete. You earned %d experience.", res.XPAwarded)
				if res.LevelUp {
					msg += fmt.Sprintf(" Level up! You are now level %d.", res.LevelAfter)
				}
				a.narrator.Speak(msg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bonus, "bonus", false, "Record as a bonus quest instead of the daily quest")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "How long the quest took, in minutes")
	cmd.Flags().BoolVar(&speak, "speak", false, "Announce the result aloud")

	return cmd
}

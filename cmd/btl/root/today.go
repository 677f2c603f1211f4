package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/engine"
	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

func newTodayCmd() *cobra.Command {
	var bonusCount int
	var speak bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's quest (and bonus quests)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			p, err := a.svc.ProfileRepo().GetOrCreate(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Back to Life"))
			fmt.Fprintln(out, ui.Muted.Render(engine.ChampionMessage(p)))
			fmt.Fprintln(out, "")

			done, err := a.svc.HasCompletedPrimaryToday(ctx)
			if err != nil {
				return err
			}
			if done {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Today's quest is already complete."))
			}

			sel, err := a.svc.SelectDailyQuest(ctx)
			if err != nil {
				return err
			}
			q := sel.Quest
			fmt.Fprintln(out, ui.Panel.Render(fmt.Sprintf(
				"%s %s\n%s\n\n%s\n\n%s %d   %s ~%d min   %s +%d xp",
				ui.IconQuest, ui.Key.Render(q.Title),
				ui.Muted.Render(q.Description),
				q.Instructions,
				ui.Muted.Render("difficulty"), q.Difficulty,
				ui.Muted.Render("time"), q.DurationMinutes,
				ui.Muted.Render("reward"), q.XPValue,
			)))
			fmt.Fprintln(out, ui.H2.Render("Why this quest"))
			fmt.Fprintln(out, sel.Reason)
			fmt.Fprintln(out, "")

			if bonusCount > 0 {
				bonus, err := a.svc.SelectBonusQuests(ctx, q, bonusCount)
				if err != nil {
					return err
				}
				if len(bonus) > 0 {
					fmt.Fprintln(out, ui.H2.Render(ui.IconStar+" Bonus quests"))
					for _, bq := range bonus {
						fmt.Fprintf(out, "- [%d] %s %s\n", bq.ID, bq.Title, ui.Muted.Render(fmt.Sprintf("(+%d xp)", bq.XPValue)))
					}
					fmt.Fprintln(out, "")
				}
			}

			remind, err := a.svc.ShouldShowShieldReminder(ctx)
			if err != nil {
				return err
			}
			if remind {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconShield+" Feeling overwhelmed? Shield mode is one command away: btl shield start"))
			}

			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Complete with: btl done %d", q.ID)))

			if speak {
				a.narrator.Speak(q.Title + ". " + q.Instructions)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&bonusCount, "bonus", "b", 3, "How many bonus quests to offer (0 to hide)")
	cmd.Flags().BoolVar(&speak, "speak", false, "Read the quest aloud")

	return cmd
}

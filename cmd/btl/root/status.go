package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/engine"
	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP and streaks",
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
			total, err := a.svc.CompletionRepo().CountAll(ctx)
			if err != nil {
				return err
			}

			intoLevel := p.XP % engine.XPPerLevel
			bar := ui.ProgressBar(intoLevel, engine.XPPerLevel, 20)

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Your journey"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintf(out, "%s %s %d/%d xp (%d to next level)\n",
				ui.Key.Render("XP:"), bar, intoLevel, engine.XPPerLevel, engine.XPForNextLevel(p.XP))
			fmt.Fprintln(out, ui.LabelValue("Total XP", p.XP))
			fmt.Fprintf(out, "%s %s %d day(s)\n", ui.Key.Render("Streak:"), ui.IconFlame, p.Streak)
			fmt.Fprintf(out, "%s %s %d day(s)\n", ui.Key.Render("Best streak:"), ui.IconTrophy, p.BestStreak)
			fmt.Fprintln(out, ui.LabelValue("Quests completed", total))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render(engine.ChampionMessage(p)))
			return nil
		},
	}

	return cmd
}

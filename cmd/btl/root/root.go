package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/INTERPOLALERT/back-to-life/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "btl",
	Short:         "Back to Life: daily recovery quests",
	Long:          "Back to Life is a local-first self-help companion: one small daily quest,\nXP and streak progression, reflections, and a crisis shield mode.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTodayCmd(),
		newDoneCmd(),
		newEasierCmd(),
		newReflectCmd(),
		newStatusCmd(),
		newInsightsCmd(),
		newShieldCmd(),
		newResetCmd(),
		newHomeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

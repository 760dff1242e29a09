package cli

import (
	"fmt"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/spf13/cobra"
)

func newAchievementsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List badges, unlocked count and points",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAchievements(wellness.NewAchievementPanel(c.Achievements)))
			return nil
		},
	}
}

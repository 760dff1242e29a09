package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/spf13/cobra"
)

func newGoalsCmd(a *App) *cobra.Command {
	period := newPeriodFlag()
	var add string
	var toggle []string

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show goals for a period, add one or toggle completion",
		Example: `  mindmate goals --period weekly
  mindmate goals --add "Walk for 20 minutes"
  mindmate goals --toggle 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			board := wellness.NewGoalBoard(c.Goals, a.now)
			board.SelectTab(period.period)
			out := cmd.OutOrStdout()

			for _, id := range toggle {
				if !board.ToggleComplete(id) {
					return fmt.Errorf("no goal with id %q", id)
				}
			}
			if cmd.Flags().Changed("add") {
				if _, ok := board.AddGoal(add); !ok {
					return errors.New("a goal needs a title")
				}
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Goal added."))
			}

			fmt.Fprintln(out, formatter.FormatGoals(board, a.now(), -1))
			return nil
		},
	}

	cmd.Flags().Var(period, "period", "Tab to show: daily, weekly or monthly")
	cmd.Flags().StringVar(&add, "add", "", "Title of a goal to add to the selected period")
	cmd.Flags().StringSliceVar(&toggle, "toggle", nil, "Goal IDs to toggle complete")

	return cmd
}

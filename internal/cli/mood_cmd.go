package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/spf13/cobra"
)

func newMoodCmd(a *App) *cobra.Command {
	mood := &moodFlag{}
	var intensity int
	var note string

	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Show recent moods, or log one with --mood",
		Example: `  mindmate mood
  mindmate mood --mood calm --intensity 7 --note "Slept well"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			tracker := wellness.NewMoodTracker(c.MoodEntries, a.now)

			if mood.mood != "" {
				tracker.SelectMood(mood.mood)
				if cmd.Flags().Changed("intensity") {
					tracker.SetIntensity(intensity)
				}
				tracker.SetNote(note)
				tracker.Submit()
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Mood logged."))
			} else if cmd.Flags().Changed("intensity") || note != "" {
				return errors.New("--intensity and --note need --mood")
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMoodTracker(tracker, a.now()))
			return nil
		},
	}

	cmd.Flags().Var(mood, "mood", "Mood to log: happy, calm, neutral, sad or anxious")
	cmd.Flags().IntVar(&intensity, "intensity", 5, "Intensity from 1 to 10")
	cmd.Flags().StringVar(&note, "note", "", "Optional note for the entry")

	return cmd
}

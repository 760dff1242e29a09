package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/repository"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/spf13/cobra"
)

func newProfileCmd(a *App) *cobra.Command {
	var name, email, age, focus, notes string
	goal := &primaryGoalFlag{}
	var toggle []string
	var save, last bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the profile",
		Example: `  mindmate profile
  mindmate profile --toggle sleep --goal sleep --save
  mindmate profile --last`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if last {
				if a.Profiles == nil {
					return errors.New("no profile store configured")
				}
				p, err := a.Profiles.LastSaved(ctx)
				if errors.Is(err, repository.ErrNotFound) {
					fmt.Fprintln(out, "No profile has been saved yet.")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatProfile(*p))
				return nil
			}

			c, err := a.catalog()
			if err != nil {
				return err
			}
			var sink wellness.ProfileSink
			if a.Profiles != nil {
				sink = a.Profiles
			}
			editor := wellness.NewProfileEditor(c.Profile, sink)

			flags := cmd.Flags()
			if flags.Changed("name") {
				editor.SetName(name)
			}
			if flags.Changed("email") {
				editor.SetEmail(email)
			}
			if flags.Changed("age") {
				editor.SetAge(age)
			}
			if flags.Changed("focus") {
				editor.SetDailyFocus(focus)
			}
			if flags.Changed("notes") {
				editor.SetNotes(notes)
			}
			if goal.goal != "" {
				editor.SetPrimaryGoal(goal.goal)
			}
			for _, tag := range toggle {
				editor.ToggleInterest(tag)
			}

			if save {
				if err := editor.Save(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Profile saved."))
			}
			fmt.Fprintln(out, formatter.FormatProfile(editor.Profile()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&age, "age", "", "Age")
	cmd.Flags().StringVar(&focus, "focus", "", "Daily focus")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().Var(goal, "goal", "Primary goal: anxiety, sleep, stress, confidence, energy or focus")
	cmd.Flags().StringSliceVar(&toggle, "toggle", nil, "Interest tags to toggle")
	cmd.Flags().BoolVar(&save, "save", false, "Save the edited profile")
	cmd.Flags().BoolVar(&last, "last", false, "Show the most recently saved profile")
	cmd.MarkFlagsMutuallyExclusive("last", "save")

	return cmd
}

package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/mindmate/internal/app"
	"github.com/alexanderramin/mindmate/internal/seed"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the collaborators used by CLI commands and the TUI.
type App struct {
	Sessions app.SessionStore
	Profiles app.ProfileStore

	// Seed produces the mock data views start from. Nil uses the built-in seed.
	Seed seed.Source
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
	// RevealDelay is how long the dashboard waits before showing its panels.
	RevealDelay time.Duration

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

func (a *App) catalog() (*seed.Catalog, error) {
	src := a.Seed
	if src == nil {
		src = seed.Default
	}
	c, err := src(a.now())
	if err != nil {
		return nil, fmt.Errorf("loading seed data: %w", err)
	}
	return c, nil
}

// NewRootCmd creates the top-level "mindmate" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mindmate",
		Short: "Mood, goals and wellness programs in your terminal",
		Long: `mindmate is a terminal client for daily mental-wellness check-ins.
Run it without arguments in a terminal to open the interactive dashboard,
or use the subcommands below for one-off views.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.IsInteractive == nil || !a.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(a)
		},
	}

	root.AddCommand(
		newMoodCmd(a),
		newGoalsCmd(a),
		newAchievementsCmd(a),
		newProgramsCmd(a),
		newAssessmentCmd(a),
		newProfileCmd(a),
		newSignOutCmd(a),
	)

	return root
}

// runTUI starts the full-screen dashboard and blocks until the user quits.
func runTUI(a *App) error {
	p := tea.NewProgram(newAppModel(a), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

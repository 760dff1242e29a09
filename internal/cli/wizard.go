package cli

import (
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formTheme colours huh forms with the formatter palette: the field in
// focus uses the header accent, the rest is dimmed.
func formTheme() *huh.Theme {
	fg := lipgloss.NewStyle().Foreground(formatter.ColorFg)
	accent := lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t := huh.ThemeBase()
	f := &t.Focused
	f.Title = accent.Bold(true)
	f.Description = dim
	f.SelectSelector = accent
	f.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	f.UnselectedOption = fg
	f.FocusedButton = fg.Background(formatter.ColorHeader).Padding(0, 1)
	f.BlurredButton = dim.Padding(0, 1)
	f.TextInput.Cursor = accent
	f.TextInput.Prompt = accent
	f.TextInput.Text = fg
	f.TextInput.Placeholder = dim

	b := &t.Blurred
	b.Title = dim
	b.SelectSelector = dim
	b.SelectedOption = dim
	b.UnselectedOption = dim
	b.TextInput.Prompt = dim
	b.TextInput.Text = dim
	return t
}

func newWizardForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(formTheme()).WithShowHelp(false)
}

// wizardMoodNote asks for the optional note attached to a mood entry.
func wizardMoodNote(note *string) *huh.Form {
	return newWizardForm(
		huh.NewGroup(
			huh.NewText().
				Title("Add a note (optional)").
				Placeholder("What's on your mind?").
				CharLimit(500).
				Value(note),
		),
	)
}

// wizardAddGoal asks for the title of a goal in the given period.
func wizardAddGoal(period domain.Period, title *string) *huh.Form {
	return newWizardForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New " + string(period) + " goal").
				Placeholder("e.g. Drink 8 glasses of water").
				Value(title),
		),
	)
}

// wizardPersonalInfo edits the profile's name, email and age.
func wizardPersonalInfo(name, email, age *string) *huh.Form {
	return newWizardForm(
		huh.NewGroup(
			huh.NewInput().Title("Full name").Value(name),
			huh.NewInput().Title("Email").Value(email),
			huh.NewInput().Title("Age").Value(age),
		),
	)
}

// wizardWellnessGoals edits the primary goal and daily focus.
func wizardWellnessGoals(goal *domain.PrimaryGoal, focus *string) *huh.Form {
	options := make([]huh.Option[domain.PrimaryGoal], 0, len(domain.PrimaryGoals))
	for _, g := range domain.PrimaryGoals {
		options = append(options, huh.NewOption(g.Label(), g))
	}
	return newWizardForm(
		huh.NewGroup(
			huh.NewSelect[domain.PrimaryGoal]().
				Title("Primary goal").
				Options(options...).
				Value(goal),
			huh.NewInput().
				Title("Daily focus").
				Placeholder("e.g. Anxiety Management").
				Value(focus),
		),
	)
}

// wizardNotes edits the free-form profile notes.
func wizardNotes(notes *string) *huh.Form {
	return newWizardForm(
		huh.NewGroup(
			huh.NewText().
				Title("Notes").
				Placeholder("Preferences, reminders, anything else").
				Value(notes),
		),
	)
}

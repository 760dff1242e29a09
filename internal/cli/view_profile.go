package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// profileSavedMsg reports the outcome of handing the profile to the store.
type profileSavedMsg struct {
	err error
}

// profileView shows the profile and opens forms for each section.
type profileView struct {
	state  *SharedState
	editor *wellness.ProfileEditor
	cursor int // index into domain.InterestOptions
	flash  string
	err    error
}

func newProfileView(state *SharedState) *profileView {
	v := &profileView{state: state}
	c, err := state.Catalog()
	if err != nil {
		v.err = err
		return v
	}
	var sink wellness.ProfileSink
	if state.App.Profiles != nil {
		sink = state.App.Profiles
	}
	v.editor = wellness.NewProfileEditor(c.Profile, sink)
	return v
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "Profile" }
func (v *profileView) Init() tea.Cmd { return nil }

func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "personal info")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goals")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "interest")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	}
}

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		if msg.err != nil {
			v.flash = shellError(msg.err)
		} else {
			v.flash = formatter.StyleGreen.Render("✔ Profile saved.")
		}
		return v, nil
	case tea.KeyMsg:
		if v.err != nil {
			return v, nil
		}
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *profileView) handleKey(msg tea.KeyMsg) tea.Cmd {
	v.flash = ""
	p := v.editor.Profile()

	switch msg.String() {
	case "left", "h":
		if v.cursor > 0 {
			v.cursor--
		}
	case "right", "l":
		if v.cursor < len(domain.InterestOptions)-1 {
			v.cursor++
		}
	case " ", "enter":
		v.editor.ToggleInterest(domain.InterestOptions[v.cursor])
	case "e":
		name, email, age := p.Name, p.Email, p.Age
		return openForm("Personal Info", wizardPersonalInfo(&name, &email, &age), func() tea.Cmd {
			v.editor.SetName(name)
			v.editor.SetEmail(email)
			v.editor.SetAge(age)
			return nil
		})
	case "g":
		goal, focus := p.PrimaryGoal, p.DailyFocus
		return openForm("Wellness Goals", wizardWellnessGoals(&goal, &focus), func() tea.Cmd {
			v.editor.SetPrimaryGoal(goal)
			v.editor.SetDailyFocus(focus)
			return nil
		})
	case "n":
		notes := p.Notes
		return openForm("Notes", wizardNotes(&notes), func() tea.Cmd {
			v.editor.SetNotes(notes)
			return nil
		})
	case "s":
		editor := v.editor
		return func() tea.Msg {
			return profileSavedMsg{err: editor.Save(context.Background())}
		}
	}
	return nil
}

func (v *profileView) View() string {
	if v.err != nil {
		return "\n  " + shellError(v.err)
	}
	var b strings.Builder
	b.WriteString(formatter.FormatProfile(v.editor.Profile()) + "\n\n")
	b.WriteString(formatter.Header("Choose interests") + "\n")
	b.WriteString(formatter.FormatInterests(v.editor.Profile(), v.cursor))
	if v.flash != "" {
		b.WriteString("\n\n" + v.flash)
	}
	return b.String()
}

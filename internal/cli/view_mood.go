package cli

import (
	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// moodView is the full-screen mood check-in with every recent entry listed.
type moodView struct {
	state *SharedState
	panel *moodPanel
	err   error
}

func newMoodView(state *SharedState) *moodView {
	v := &moodView{state: state}
	c, err := state.Catalog()
	if err != nil {
		v.err = err
		return v
	}
	v.panel = newMoodPanel(state, c.MoodEntries)
	return v
}

func (v *moodView) ID() ViewID               { return ViewMood }
func (v *moodView) Title() string            { return "Mood" }
func (v *moodView) ShortHelp() []key.Binding { return moodPanelKeys }
func (v *moodView) Init() tea.Cmd            { return nil }

func (v *moodView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && v.err == nil {
		_, cmd := v.panel.handleKey(keyMsg)
		return v, cmd
	}
	return v, nil
}

func (v *moodView) View() string {
	if v.err != nil {
		return "\n  " + shellError(v.err)
	}
	return v.panel.view(true, domain.MaxRecentEntries)
}

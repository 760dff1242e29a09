package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// goalsView is the full-screen goal tracker.
type goalsView struct {
	state *SharedState
	panel *goalsPanel
	err   error
}

func newGoalsView(state *SharedState) *goalsView {
	v := &goalsView{state: state}
	c, err := state.Catalog()
	if err != nil {
		v.err = err
		return v
	}
	v.panel = newGoalsPanel(state, c.Goals)
	return v
}

func (v *goalsView) ID() ViewID               { return ViewGoals }
func (v *goalsView) Title() string            { return "Goals" }
func (v *goalsView) ShortHelp() []key.Binding { return goalsPanelKeys }
func (v *goalsView) Init() tea.Cmd            { return nil }

func (v *goalsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && v.err == nil {
		_, cmd := v.panel.handleKey(keyMsg)
		return v, cmd
	}
	return v, nil
}

func (v *goalsView) View() string {
	if v.err != nil {
		return "\n  " + shellError(v.err)
	}
	return v.panel.view(true)
}

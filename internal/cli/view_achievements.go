package cli

import (
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// achievementsView lists badges with the unlocked count and points total.
type achievementsView struct {
	state *SharedState
	panel *wellness.AchievementPanel
	err   error
}

func newAchievementsView(state *SharedState) *achievementsView {
	v := &achievementsView{state: state}
	c, err := state.Catalog()
	if err != nil {
		v.err = err
		return v
	}
	v.panel = wellness.NewAchievementPanel(c.Achievements)
	return v
}

func (v *achievementsView) ID() ViewID               { return ViewAchievements }
func (v *achievementsView) Title() string            { return "Achievements" }
func (v *achievementsView) ShortHelp() []key.Binding { return nil }
func (v *achievementsView) Init() tea.Cmd            { return nil }

func (v *achievementsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *achievementsView) View() string {
	if v.err != nil {
		return "\n  " + shellError(v.err)
	}
	return formatter.FormatAchievements(v.panel)
}

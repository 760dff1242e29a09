package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/mindmate/internal/app"
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/seed"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// revealMsg ends the dashboard's fade-in. id matches the mount that
// scheduled it; ticks from an earlier mount are ignored.
type revealMsg struct {
	id int
}

// dashboardFocus is the panel receiving keys on the dashboard.
type dashboardFocus int

const (
	focusActions dashboardFocus = iota
	focusMood
	focusGoals
	dashboardFocusCount
)

// sideBySideWidth is the terminal width at which mood and goals share a row.
const sideBySideWidth = 140

// dashboardView is the home screen: summary cards, quick actions, the
// mood and goal trackers, achievements and today's recommendations.
type dashboardView struct {
	state   *SharedState
	catalog *seed.Catalog
	err     error

	mood         *moodPanel
	goals        *goalsPanel
	achievements *wellness.AchievementPanel

	focus        dashboardFocus
	actionCursor int
	revealID     int
	revealed     bool
	vp           viewport.Model
}

func newDashboardView(state *SharedState) *dashboardView {
	v := &dashboardView{state: state, focus: focusActions}
	v.catalog, v.err = state.Catalog()
	if v.err == nil {
		v.mood = newMoodPanel(state, v.catalog.MoodEntries)
		v.goals = newGoalsPanel(state, v.catalog.Goals)
		v.achievements = wellness.NewAchievementPanel(v.catalog.Achievements)
	}
	v.vp = viewport.New(0, 0)
	v.vp.KeyMap = outputViewportKeyMap()
	return v
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
	}
	switch v.focus {
	case focusActions:
		hints = append(hints, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")))
	case focusMood:
		hints = append(hints, moodPanelKeys...)
	case focusGoals:
		hints = append(hints, goalsPanelKeys...)
	}
	return append(hints,
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "programs")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "profile")),
		key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sign out")),
	)
}

// Init schedules the one-shot reveal for this mount.
func (v *dashboardView) Init() tea.Cmd {
	v.revealID = v.state.nextRevealID()
	v.revealed = false
	id := v.revealID
	delay := v.state.App.RevealDelay
	if delay <= 0 {
		return func() tea.Msg { return revealMsg{id: id} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return revealMsg{id: id} })
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		if msg.id == v.revealID {
			v.revealed = true
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

func (v *dashboardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		v.focus = (v.focus + 1) % dashboardFocusCount
		return nil
	case "shift+tab":
		v.focus = (v.focus + dashboardFocusCount - 1) % dashboardFocusCount
		return nil
	case "p":
		return v.state.Nav.NavigateTo(app.RoutePrograms, nil)
	case "u":
		return v.state.Nav.NavigateTo(app.RouteProfile, nil)
	case "S":
		return signOutCmd(v.state)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return cmd
	}

	switch v.focus {
	case focusActions:
		return v.handleActionKey(msg)
	case focusMood:
		_, cmd := v.mood.handleKey(msg)
		return cmd
	case focusGoals:
		_, cmd := v.goals.handleKey(msg)
		return cmd
	}
	return nil
}

func (v *dashboardView) handleActionKey(msg tea.KeyMsg) tea.Cmd {
	actions := v.catalog.QuickActions
	switch msg.String() {
	case "left", "h":
		if v.actionCursor > 0 {
			v.actionCursor--
		}
	case "right", "l":
		if v.actionCursor < len(actions)-1 {
			v.actionCursor++
		}
	case "enter":
		if v.actionCursor < len(actions) {
			return v.state.Nav.NavigateTo(actions[v.actionCursor].Route, nil)
		}
	}
	return nil
}

func (v *dashboardView) View() string {
	if v.err != nil {
		return "\n  " + shellError(v.err)
	}
	now := v.state.Now()
	greeting := formatter.StyleHeader.Render(formatter.Greeting(v.catalog.Profile.FirstName(), now))
	if !v.revealed {
		return "\n  " + greeting + "\n\n  " + formatter.Dim("Preparing your dashboard…")
	}

	var sections []string
	sections = append(sections, greeting)
	sections = append(sections, formatter.FormatDashboardStats(v.catalog.Stats, now))

	actionCursor := -1
	if v.focus == focusActions {
		actionCursor = v.actionCursor
	}
	sections = append(sections, formatter.RenderBox("Quick Actions",
		formatter.FormatQuickActions(v.catalog.QuickActions, actionCursor)))

	moodView := v.mood.view(v.focus == focusMood, 3)
	goalsView := v.goals.view(v.focus == focusGoals)
	if v.state.Width >= sideBySideWidth {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, moodView, " ", goalsView))
	} else {
		sections = append(sections, moodView, goalsView)
	}

	sections = append(sections, formatter.FormatAchievements(v.achievements))
	sections = append(sections, formatter.FormatRecommendations(v.catalog.Recommendations))

	content := strings.Join(sections, "\n\n")
	if v.state.Height <= 0 {
		return content
	}
	v.vp.Width = v.state.Width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(content)
	return v.vp.View()
}

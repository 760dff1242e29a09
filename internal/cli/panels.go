package cli

import (
	"strings"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Panels are the interactive pieces shared by the dashboard and the
// standalone views. Each owns its component; a view embeds the panels it
// shows and forwards keys to the focused one.

// ── mood ─────────────────────────────────────────────────────────────────────

type moodPanel struct {
	state   *SharedState
	tracker *wellness.MoodTracker
	cursor  int
	flash   string
}

func newMoodPanel(state *SharedState, entries []domain.MoodEntry) *moodPanel {
	return &moodPanel{
		state:   state,
		tracker: wellness.NewMoodTracker(entries, state.Now),
	}
}

var moodPanelKeys = []key.Binding{
	key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "mood")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
	key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "intensity")),
	key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note")),
	key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
}

// handleKey applies a key to the panel; handled is false for keys the
// panel does not use.
func (p *moodPanel) handleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if p.cursor > 0 {
			p.cursor--
		}
	case "right", "l":
		if p.cursor < len(domain.Moods)-1 {
			p.cursor++
		}
	case "enter", " ":
		p.tracker.SelectMood(domain.Moods[p.cursor])
		p.flash = ""
	case "+", "=":
		p.tracker.SetIntensity(p.tracker.Intensity() + 1)
	case "-", "_":
		p.tracker.SetIntensity(p.tracker.Intensity() - 1)
	case "n":
		note := p.tracker.Note()
		return true, openForm("Mood Note", wizardMoodNote(&note), func() tea.Cmd {
			p.tracker.SetNote(note)
			return nil
		})
	case "s":
		if p.tracker.Submit() {
			p.flash = formatter.StyleGreen.Render("✔ Mood logged.")
		} else {
			p.flash = formatter.StyleYellow.Render("Pick a mood first.")
		}
	default:
		return false, nil
	}
	return true, nil
}

func (p *moodPanel) view(focused bool, entries int) string {
	var b strings.Builder
	b.WriteString(formatter.FormatMoodPicker(p.cursorIf(focused), p.tracker.Pending()) + "\n")
	b.WriteString(formatter.FormatIntensity(p.tracker.Intensity()) + "\n")
	if note := p.tracker.Note(); note != "" {
		b.WriteString(formatter.Dim("Note: "+note) + "\n")
	}
	if p.flash != "" {
		b.WriteString(p.flash + "\n")
	}
	b.WriteString("\n" + formatter.Header("Recent entries") + "\n")
	b.WriteString(formatter.FormatMoodEntries(p.tracker.Recent(entries), p.state.Now()) + "\n\n")
	b.WriteString(formatter.FormatAverageIntensity(p.tracker.AverageIntensity()))
	return formatter.RenderBox("How are you feeling?", b.String())
}

func (p *moodPanel) cursorIf(focused bool) int {
	if !focused {
		return -1
	}
	return p.cursor
}

// ── goals ────────────────────────────────────────────────────────────────────

type goalsPanel struct {
	state  *SharedState
	board  *wellness.GoalBoard
	cursor int
	flash  string
}

func newGoalsPanel(state *SharedState, goals []domain.Goal) *goalsPanel {
	return &goalsPanel{
		state: state,
		board: wellness.NewGoalBoard(goals, state.Now),
	}
}

var goalsPanelKeys = []key.Binding{
	key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "period")),
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
	key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("x", "toggle done")),
	key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add goal")),
}

func (p *goalsPanel) handleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	switch msg.String() {
	case "[":
		p.shiftTab(-1)
	case "]":
		p.shiftTab(1)
	case "1", "2", "3":
		p.board.SelectTab(domain.Periods[int(msg.Runes[0]-'1')])
		p.cursor = 0
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.board.Visible())-1 {
			p.cursor++
		}
	case " ", "x":
		visible := p.board.Visible()
		if p.cursor < len(visible) {
			p.board.ToggleComplete(visible[p.cursor].ID)
		}
	case "a":
		var title string
		period := p.board.ActiveTab()
		return true, openForm("Add Goal", wizardAddGoal(period, &title), func() tea.Cmd {
			p.addGoal(title)
			return nil
		})
	default:
		return false, nil
	}
	p.flash = ""
	return true, nil
}

// addGoal adds title to the active tab and selects it.
func (p *goalsPanel) addGoal(title string) {
	if _, ok := p.board.AddGoal(title); !ok {
		p.flash = formatter.StyleYellow.Render("A goal needs a title.")
		return
	}
	p.flash = formatter.StyleGreen.Render("✔ Goal added.")
	p.cursor = len(p.board.Visible()) - 1
}

func (p *goalsPanel) shiftTab(delta int) {
	idx := 0
	for i, period := range domain.Periods {
		if period == p.board.ActiveTab() {
			idx = i
		}
	}
	idx = (idx + delta + len(domain.Periods)) % len(domain.Periods)
	p.board.SelectTab(domain.Periods[idx])
	p.cursor = 0
}

func (p *goalsPanel) view(focused bool) string {
	cursor := -1
	if focused {
		cursor = p.cursor
	}
	out := formatter.FormatGoals(p.board, p.state.Now(), cursor)
	if p.flash != "" {
		out += "\n" + p.flash
	}
	return out
}

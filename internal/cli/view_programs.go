package cli

import (
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// programsView shows the active program, recommendations and the
// category-filtered catalog.
type programsView struct {
	state   *SharedState
	catalog *wellness.ProgramCatalog
	cursor  int
	err     error
}

func newProgramsView(state *SharedState) *programsView {
	v := &programsView{state: state}
	c, err := state.Catalog()
	if err != nil {
		v.err = err
		return v
	}
	v.catalog = wellness.NewProgramCatalog(c.Programs, c.ProgramCategories)
	return v
}

func (v *programsView) ID() ViewID    { return ViewPrograms }
func (v *programsView) Title() string { return "Programs" }
func (v *programsView) Init() tea.Cmd { return nil }

func (v *programsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "category")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
	}
}

func (v *programsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.err != nil {
		return v, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		v.shiftCategory(-1)
	case "right", "l":
		v.shiftCategory(1)
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.catalog.Visible())-1 {
			v.cursor++
		}
	}
	return v, nil
}

func (v *programsView) shiftCategory(delta int) {
	cats := v.catalog.Categories()
	idx := 0
	for i, c := range cats {
		if c == v.catalog.Category() {
			idx = i
		}
	}
	idx = (idx + delta + len(cats)) % len(cats)
	v.catalog.SetCategory(cats[idx])
	v.cursor = 0
}

func (v *programsView) View() string {
	if v.err != nil {
		return "\n  " + shellError(v.err)
	}
	return formatter.FormatPrograms(v.catalog, v.cursor)
}

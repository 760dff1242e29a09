package cli

import (
	"strings"

	"github.com/alexanderramin/mindmate/internal/app"
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model: a stack of views, the command bar
// underneath and an output pane that temporarily covers the active view.
type appModel struct {
	state     *SharedState
	viewStack viewStack
	cmdBar    commandBar
	output    outputPane
	quitting  bool
}

func newAppModel(a *App) appModel {
	state := &SharedState{App: a}
	state.Nav = newTUINavigator(state)
	return appModel{
		state:     state,
		viewStack: viewStack{newDashboardView(state)},
		cmdBar:    newCommandBar(state),
		output:    newOutputPane(),
	}
}

func (m *appModel) activeView() View {
	return m.viewStack.top()
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.navigate(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		m.cmdBar.SetWidth(msg.Width)
		m.output.resize(msg.Width, m.state.ContentHeight())
		return m, m.viewStack.updateTop(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.output.active {
			return m, m.output.scroll(msg)
		}

	case refreshViewMsg, revealMsg, profileSavedMsg:
		// Results of async work belong to the views, even while the command
		// bar has focus or a form covers the view that started it.
		return m, m.viewStack.broadcast(msg)

	case cmdOutputMsg:
		m.output.show(msg.output, m.state.Width, m.state.ContentHeight())
		return m, nil

	case signedOutMsg:
		if msg.err != nil {
			return m, outputCmd(shellError(msg.err))
		}
		return m, m.state.Nav.NavigateTo(app.RouteHome, nil)

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Anything else (cursor blinks, form internals) goes to whoever has focus.
	if m.cmdBar.Focused() {
		return m, m.cmdBar.UpdateNonKey(msg)
	}
	return m, m.viewStack.updateTop(msg)
}

// navigate applies view transitions. ok is false for other messages.
func (m *appModel) navigate(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	switch msg := msg.(type) {
	case pushViewMsg:
		m.leaveView()
		m.viewStack.push(msg.view)
		return msg.view.Init(), true

	case replaceViewMsg:
		m.leaveView()
		m.viewStack.replace(msg.view)
		return msg.view.Init(), true

	case resetViewMsg:
		m.leaveView()
		m.viewStack.reset(msg.view)
		return msg.view.Init(), true

	case popViewMsg:
		m.viewStack.pop()
		return nil, true

	case formClosedMsg:
		// The wizard closes before its follow-up runs, so output lands on
		// the view that opened it.
		m.viewStack.pop()
		m.output.clear()
		refresh := func() tea.Msg { return refreshViewMsg{} }
		return tea.Batch(msg.nextCmd, refresh), true
	}
	return nil, false
}

// leaveView resets the chrome before a new view takes the screen.
func (m *appModel) leaveView() {
	m.cmdBar.Blur()
	m.output.clear()
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.output.clear()
		}
		return m, m.cmdBar.Update(msg)
	}

	if m.output.active {
		if isOutputScrollKey(msg) {
			return m, m.output.scroll(msg)
		}
		m.output.clear()
	}

	// Forms take every key, including q, : and esc.
	if viewCapturesInput(m.activeView()) {
		return m, m.viewStack.updateTop(msg)
	}

	switch {
	case msg.String() == ":":
		m.cmdBar.Focus()
		return m, nil
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "?":
		return m, outputCmd(formatter.FormatShellHelp())
	case msg.Type == tea.KeyEsc:
		m.viewStack.pop()
		return m, nil
	}

	return m, m.viewStack.updateTop(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	content := ""
	switch {
	case m.output.active:
		content = m.output.view(m.state.Height > 0)
	case m.activeView() != nil:
		content = m.activeView().View()
	}

	screen := strings.Join([]string{
		m.renderHeader(),
		content,
		m.renderStatusBar(),
		m.cmdBar.View(),
	}, "\n")

	// Fill the terminal so the alt-screen renderer overwrites stale lines.
	if m.state.Height > 0 {
		if lines := strings.Count(screen, "\n") + 1; lines < m.state.Height {
			screen += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return screen
}

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("mindmate")
	if crumbs := m.viewStack.titles(); len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	header += "  " + formatter.Dim(m.state.Now().Format("Mon 2 Jan"))
	return header + "\n" + m.rule()
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	switch {
	case m.output.overflows():
		hints = append(hints,
			m.output.position(),
			formatter.Dim("↑↓ pgup/pgdn: scroll"),
			formatter.Dim("esc: dismiss"))
	case !m.output.active:
		if v := m.activeView(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
			}
		}
	}

	if !m.cmdBar.Focused() && !m.output.active {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim(": command"))
	}

	return m.rule() + "\n" + strings.Join(hints, "  ")
}

// rule is a dim horizontal line across the terminal.
func (m *appModel) rule() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(formatter.ColorDim))
	return style.Render(strings.Repeat("─", max(m.state.Width, 20)))
}

// viewCapturesInput reports whether v edits text and needs every key.
func viewCapturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}

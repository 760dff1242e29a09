package cli

import (
	"fmt"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// outputPane shows command output in place of the active view until a
// key other than a scroll key dismisses it.
type outputPane struct {
	text   string
	active bool
	vp     viewport.Model
}

func newOutputPane() outputPane {
	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return outputPane{vp: vp}
}

func (p *outputPane) show(text string, width, height int) {
	p.text = text
	p.active = true
	p.vp.SetContent(text)
	p.resize(width, height)
	p.vp.GotoTop()
}

func (p *outputPane) clear() {
	p.text = ""
	p.active = false
}

func (p *outputPane) resize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

func (p *outputPane) scroll(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

// overflows reports whether the shown text is taller than the pane.
func (p *outputPane) overflows() bool {
	return p.active && p.vp.TotalLineCount() > p.vp.Height
}

// view renders through the viewport once the terminal size is known.
func (p *outputPane) view(sized bool) string {
	if sized {
		return p.vp.View()
	}
	return p.text
}

// position is the dim scroll marker for the status bar.
func (p *outputPane) position() string {
	switch {
	case p.vp.AtTop():
		return formatter.Dim("[TOP]")
	case p.vp.AtBottom():
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(p.vp.ScrollPercent()*100)))
}

// outputViewportKeyMap scrolls with arrows and paging keys only, leaving
// letters free to dismiss the output or reach global shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// isOutputScrollKey reports whether msg scrolls the output rather than
// dismissing it.
func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

package cli

import (
	"strings"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const commandPrompt = "mindmate ❯ "

// commandBar is the text input under the active view. Enter runs the
// line through executeCommand; up and down walk this session's history.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool
	history lineHistory
}

func newCommandBar(state *SharedState) commandBar {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 200
	in.ShowSuggestions = true
	in.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	in.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	return commandBar{input: in, state: state}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool { return c.focused }

func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len([]rune(commandPrompt)) - 1
}

// Update handles a key while the bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		c.Blur()
		return nil
	case tea.KeyUp:
		if line, ok := c.history.older(); ok {
			c.recall(line)
		}
		return nil
	case tea.KeyDown:
		c.recall(c.history.newer())
		return nil
	case tea.KeyEnter:
		line := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if line == "" {
			return nil
		}
		c.history.add(line)
		return c.executeCommand(line)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.suggest()
	return cmd
}

// UpdateNonKey forwards cursor blinks and similar messages to the input.
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	prefix := formatter.StylePurple.Render("mindmate") + " " + formatter.Dim("❯") + " "
	if c.focused {
		return prefix + c.input.View()
	}
	return prefix + formatter.Dim("press : to type a command")
}

func (c *commandBar) recall(line string) {
	c.input.SetValue(line)
	c.input.CursorEnd()
}

// suggest completes the command name only; arguments are free text.
func (c *commandBar) suggest() {
	text := c.input.Value()
	if text == "" || strings.ContainsRune(text, ' ') {
		c.input.SetSuggestions(nil)
		return
	}
	c.input.SetSuggestions(filterSuggestions(commandNames, text))
}

// filterSuggestions returns the candidates starting with prefix, case-insensitively.
func filterSuggestions(candidates []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), prefix) {
			out = append(out, c)
		}
	}
	return out
}

// lineHistory holds the commands entered this session. pos == len(lines)
// means the cursor is past the newest entry, on an empty line.
type lineHistory struct {
	lines []string
	pos   int
}

func (h *lineHistory) add(line string) {
	h.lines = append(h.lines, line)
	h.pos = len(h.lines)
}

// older moves one entry back. ok is false once the oldest is reached.
func (h *lineHistory) older() (line string, ok bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// newer moves one entry forward, ending on an empty line.
func (h *lineHistory) newer() string {
	if h.pos < len(h.lines)-1 {
		h.pos++
		return h.lines[h.pos]
	}
	h.pos = len(h.lines)
	return ""
}

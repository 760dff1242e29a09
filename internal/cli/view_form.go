package cli

import (
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView puts a huh.Form on the view stack. submit runs once the form
// completes and its command follows the view off the stack.
type formView struct {
	title  string
	form   *huh.Form
	submit func() tea.Cmd
	closed bool
}

func (v *formView) Init() tea.Cmd { return v.form.Init() }

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.closed {
		return v, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v.close(outputCmd(formatter.Dim("Cancelled.")))
	}

	next, cmd := v.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var after tea.Cmd
		if v.submit != nil {
			after = v.submit()
		}
		return v.close(tea.Batch(cmd, after))
	case huh.StateAborted:
		return v.close(outputCmd(formatter.Dim("Cancelled.")))
	}
	return v, cmd
}

// close sends the single formClosedMsg for this form.
func (v *formView) close(after tea.Cmd) (tea.Model, tea.Cmd) {
	v.closed = true
	return v, func() tea.Msg { return formClosedMsg{nextCmd: after} }
}

func (v *formView) View() string  { return v.form.View() }
func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.title }

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// openForm pushes form as a view. A nil form submits immediately.
func openForm(title string, form *huh.Form, submit func() tea.Cmd) tea.Cmd {
	if form != nil {
		return pushView(&formView{title: title, form: form, submit: submit})
	}
	if submit != nil {
		return submit()
	}
	return nil
}

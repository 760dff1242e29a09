// Package teatest runs bubbletea models without a tea.Program.
//
// A Driver calls Update directly and executes every returned Cmd on the
// spot, feeding its message back into the model, so a test sees the
// settled state after each key press.
//
// Cmds that block (cursor blinks, tea.Tick with a real delay) are given a
// short deadline and dropped when they miss it.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many Cmd → Msg → Cmd hops one Send may follow.
const MaxDrainDepth = 100

// cmdTimeout separates message factories, which return immediately, from
// timer-backed Cmds such as cursor blinks and delayed ticks.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a tea.Model synchronously.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records a tea.QuitMsg seen while draining. A running
	// program would stop there, so later sends are ignored.
	Quitting bool

	// Dropped counts Cmds abandoned for missing the deadline.
	Dropped int
}

// Option configures a Driver before its first message.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// New wraps model. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// ── keys ─────────────────────────────────────────────────────────────────────

func (d *Driver) sendType(t tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: t})
}

// PressKey sends a single printable rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter()    { d.T.Helper(); d.sendType(tea.KeyEnter) }
func (d *Driver) PressEsc()      { d.T.Helper(); d.sendType(tea.KeyEsc) }
func (d *Driver) PressCtrlC()    { d.T.Helper(); d.sendType(tea.KeyCtrlC) }
func (d *Driver) PressUp()       { d.T.Helper(); d.sendType(tea.KeyUp) }
func (d *Driver) PressDown()     { d.T.Helper(); d.sendType(tea.KeyDown) }
func (d *Driver) PressLeft()     { d.T.Helper(); d.sendType(tea.KeyLeft) }
func (d *Driver) PressRight()    { d.T.Helper(); d.sendType(tea.KeyRight) }
func (d *Driver) PressTab()      { d.T.Helper(); d.sendType(tea.KeyTab) }
func (d *Driver) PressShiftTab() { d.T.Helper(); d.sendType(tea.KeyShiftTab) }
func (d *Driver) PressSpace()    { d.T.Helper(); d.sendType(tea.KeySpace) }

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: stopped draining after %d hops", MaxDrainDepth)
		return
	}

	msg, ok := runWithDeadline(cmd)
	if !ok {
		d.Dropped++
		return
	}
	if msg == nil || isBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(m)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// runWithDeadline executes cmd, giving up after cmdTimeout.
func runWithDeadline(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// isBlink matches the unexported blink messages of bubbles/cursor.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}

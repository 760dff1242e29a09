package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/mindmate/internal/repository"
	"github.com/alexanderramin/mindmate/internal/service"
	"github.com/alexanderramin/mindmate/internal/teatest"
	"github.com/alexanderramin/mindmate/internal/testutil"
)

// testNow is a Sunday morning, so the dashboard greets with "Good morning".
var testNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

// testApp wires the real services over an in-memory local store with a
// fixed clock and no reveal delay.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &App{
		Sessions: service.NewSessionService(testutil.NewTestUoW(database)),
		Profiles: service.NewProfileService(repository.NewSQLiteLocalStoreRepo(database)),
		Clock:    func() time.Time { return testNow },
	}
}

// failingSessions is a SessionStore whose ClearSession always fails.
type failingSessions struct {
	err error
}

func (f failingSessions) ClearSession(context.Context) error { return f.err }

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, shared state, command bar focus).
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init,
// which reveals the dashboard straight away when RevealDelay is zero.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

// Command types input into the command bar and runs it, leaving the bar
// blurred so later keys reach the active view.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveView returns the top view on the stack.
func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

// ActiveViewID returns the ViewID of the top view, or -1 for an empty stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.ActiveView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// Dashboard returns the bottom view as a dashboard, failing the test if
// it is anything else.
func (d *TestDriver) Dashboard() *dashboardView {
	d.T.Helper()
	m := d.appModel()
	if len(m.viewStack) == 0 {
		d.T.Fatal("empty view stack")
	}
	dv, ok := m.viewStack[0].(*dashboardView)
	if !ok {
		d.T.Fatalf("bottom view is %T, not a dashboard", m.viewStack[0])
	}
	return dv
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports a quit from either the model or a drained tea.QuitMsg.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput returns the transient output shown in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().output.text
}

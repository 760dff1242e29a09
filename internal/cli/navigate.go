package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// resetViewMsg drops the whole stack and mounts view as the only entry.
type resetViewMsg struct {
	view View
}

// refreshViewMsg is broadcast to every view on the stack after a wizard
// closes so views can re-read state the wizard changed.
type refreshViewMsg struct{}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// formClosedMsg is sent when a form view completes or is cancelled.
// The appModel pops the form first, then runs nextCmd.
type formClosedMsg struct {
	nextCmd tea.Cmd
}

// signedOutMsg reports the result of clearing the local store.
type signedOutMsg struct {
	err error
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// resetView returns a tea.Cmd that makes v the only view on the stack.
func resetView(v View) tea.Cmd {
	return func() tea.Msg { return resetViewMsg{view: v} }
}

func quitCmd() tea.Msg { return quitMsg{} }

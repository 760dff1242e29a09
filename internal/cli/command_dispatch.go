package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mindmate/internal/app"
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// commandNames lists what the command bar understands, for autocomplete.
var commandNames = []string{
	"dashboard", "mood", "goals", "achievements", "assessment",
	"programs", "profile", "signout", "help", "quit",
}

// executeCommand dispatches a text command and returns a tea.Cmd.
// Commands may return cmdOutputMsg for display, navigation messages
// for view transitions, or quitMsg for exit.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	nav := c.state.Nav

	switch cmd {
	case "dashboard", "home":
		return nav.NavigateTo(app.RouteDashboard, nil)
	case "programs":
		return nav.NavigateTo(app.RoutePrograms, nil)
	case "profile":
		return nav.NavigateTo(app.RouteProfile, nil)
	case "assessment":
		return nav.NavigateTo(app.RouteAssessment, nil)
	case "mood":
		return pushView(newMoodView(c.state))
	case "goals":
		return pushView(newGoalsView(c.state))
	case "achievements":
		return pushView(newAchievementsView(c.state))
	case "go":
		if len(parts) < 2 {
			return outputCmd(formatter.StyleYellow.Render("Usage: go <path>"))
		}
		return nav.NavigateTo(parts[1], nil)
	case "signout", "sign-out", "logout":
		return signOutCmd(c.state)
	case "help":
		return outputCmd(formatter.FormatShellHelp())
	case "clear":
		return nil
	case "exit", "quit":
		return quitCmd
	default:
		return outputCmd(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", cmd))
	}
}

// signOutCmd clears the local store in the background and reports back
// with a signedOutMsg.
func signOutCmd(state *SharedState) tea.Cmd {
	store := state.App.Sessions
	return func() tea.Msg {
		if store == nil {
			return signedOutMsg{}
		}
		return signedOutMsg{err: store.ClearSession(context.Background())}
	}
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// shellError renders an error for the output area.
func shellError(err error) string {
	return formatter.StyleRed.Render("Error: ") + err.Error()
}

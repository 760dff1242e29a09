package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/mindmate/internal/app"
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigator turns a route path, with optional hand-off state, into a view
// transition.
type Navigator interface {
	NavigateTo(path string, state any) tea.Cmd
}

// tuiNavigator maps routes onto the view stack.
type tuiNavigator struct {
	state *SharedState
}

func newTUINavigator(state *SharedState) *tuiNavigator {
	return &tuiNavigator{state: state}
}

func (n *tuiNavigator) NavigateTo(path string, payload any) tea.Cmd {
	dest, err := app.Resolve(path)
	if err != nil {
		if errors.Is(err, app.ErrRouteUnavailable) {
			return outputCmd(formatter.StyleYellow.Render(
				fmt.Sprintf("%s is not available in this client yet.", path)))
		}
		return outputCmd(shellError(err))
	}

	switch dest {
	case app.DestExit:
		return quitCmd
	case app.DestDashboard:
		return resetView(newDashboardView(n.state))
	case app.DestPrograms:
		return pushView(newProgramsView(n.state))
	case app.DestProfile:
		return pushView(newProfileView(n.state))
	case app.DestAssessment:
		return pushView(newAssessmentView(n.state))
	case app.DestAssessmentResults:
		result, ok := payload.(*domain.AssessmentResult)
		if !ok || result == nil {
			return outputCmd(shellError(errors.New("no assessment result to show")))
		}
		return replaceView(newAssessmentResultsView(n.state, result))
	}
	return nil
}

package cli

import (
	"testing"

	"github.com/alexanderramin/mindmate/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNavigator(t *testing.T) *tuiNavigator {
	t.Helper()
	state := &SharedState{App: testApp(t)}
	nav := newTUINavigator(state)
	state.Nav = nav
	return nav
}

func navigateMsg(t *testing.T, nav Navigator, path string, payload any) tea.Msg {
	t.Helper()
	cmd := nav.NavigateTo(path, payload)
	require.NotNil(t, cmd, path)
	return cmd()
}

func TestNavigator_InAppRoutes(t *testing.T) {
	nav := newTestNavigator(t)

	push, ok := navigateMsg(t, nav, "/programs", nil).(pushViewMsg)
	require.True(t, ok)
	assert.Equal(t, ViewPrograms, push.view.ID())

	push, ok = navigateMsg(t, nav, "/profile", nil).(pushViewMsg)
	require.True(t, ok)
	assert.Equal(t, ViewProfile, push.view.ID())

	push, ok = navigateMsg(t, nav, "/assessment", nil).(pushViewMsg)
	require.True(t, ok)
	assert.Equal(t, ViewAssessment, push.view.ID())

	reset, ok := navigateMsg(t, nav, "/dashboard", nil).(resetViewMsg)
	require.True(t, ok)
	assert.Equal(t, ViewDashboard, reset.view.ID())
}

func TestNavigator_HomeQuits(t *testing.T) {
	nav := newTestNavigator(t)
	assert.IsType(t, quitMsg{}, navigateMsg(t, nav, "/", nil))
}

func TestNavigator_AssessmentResultsReplaceQuestionnaire(t *testing.T) {
	nav := newTestNavigator(t)
	result := &domain.AssessmentResult{Score: 4, Answers: []int{1, 1, 1, 1, 0, 0, 0}}

	replace, ok := navigateMsg(t, nav, "/assessment-results", result).(replaceViewMsg)
	require.True(t, ok)
	rv, ok := replace.view.(*assessmentResultsView)
	require.True(t, ok)
	assert.Same(t, result, rv.result)
	assert.Len(t, rv.questions, 7)
}

func TestNavigator_BadResultsPayload(t *testing.T) {
	nav := newTestNavigator(t)

	for _, payload := range []any{nil, "not a result", (*domain.AssessmentResult)(nil)} {
		out, ok := navigateMsg(t, nav, "/assessment-results", payload).(cmdOutputMsg)
		require.True(t, ok)
		assert.Contains(t, out.output, "no assessment result")
	}
}

func TestNavigator_UnavailableAndUnknown(t *testing.T) {
	nav := newTestNavigator(t)

	out, ok := navigateMsg(t, nav, "/brain-training", nil).(cmdOutputMsg)
	require.True(t, ok)
	assert.Contains(t, out.output, "/brain-training is not available in this client yet.")

	out, ok = navigateMsg(t, nav, "/settings", nil).(cmdOutputMsg)
	require.True(t, ok)
	assert.Contains(t, out.output, `unknown route "/settings"`)
}

package cli

import (
	"github.com/alexanderramin/mindmate/internal/app"
	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// assessmentView walks the questionnaire one question at a time and hands
// the scored result to the results view.
type assessmentView struct {
	state  *SharedState
	quiz   *wellness.Assessment
	cursor int
	err    error
}

func newAssessmentView(state *SharedState) *assessmentView {
	v := &assessmentView{state: state}
	c, err := state.Catalog()
	if err != nil {
		v.err = err
		return v
	}
	v.quiz = wellness.NewAssessment(c.Questions)
	return v
}

func (v *assessmentView) ID() ViewID    { return ViewAssessment }
func (v *assessmentView) Title() string { return "Assessment" }
func (v *assessmentView) Init() tea.Cmd { return nil }

func (v *assessmentView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "option")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back")),
	}
}

func (v *assessmentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.err != nil {
		return v, nil
	}
	q, ok := v.quiz.Current()
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(q.Options)-1 {
			v.cursor++
		}
	case "enter", " ":
		if v.cursor < len(q.Options) {
			v.quiz.SelectAnswer(q.Options[v.cursor].Value)
		}
	case "right", "l", "n":
		result, moved := v.quiz.Next()
		if !moved {
			return v, nil
		}
		if result != nil {
			return v, v.state.Nav.NavigateTo(app.RouteAssessmentResults, result)
		}
		v.syncCursor()
	case "left", "h", "b":
		if v.quiz.Back() {
			v.syncCursor()
		}
	}
	return v, nil
}

// syncCursor puts the cursor on the restored answer, or the first option.
func (v *assessmentView) syncCursor() {
	v.cursor = 0
	q, ok := v.quiz.Current()
	if !ok {
		return
	}
	pending, ok := v.quiz.Pending()
	if !ok {
		return
	}
	for i, o := range q.Options {
		if o.Value == pending {
			v.cursor = i
		}
	}
}

func (v *assessmentView) View() string {
	if v.err != nil {
		return "\n  " + shellError(v.err)
	}
	return formatter.FormatQuestion(v.quiz, v.cursor)
}

// assessmentResultsView shows a submitted assessment.
type assessmentResultsView struct {
	state     *SharedState
	result    *domain.AssessmentResult
	questions []domain.Question
	maxScore  int
}

func newAssessmentResultsView(state *SharedState, result *domain.AssessmentResult) *assessmentResultsView {
	v := &assessmentResultsView{state: state, result: result}
	if c, err := state.Catalog(); err == nil {
		v.questions = c.Questions
		v.maxScore = wellness.NewAssessment(c.Questions).MaxScore()
	}
	return v
}

func (v *assessmentResultsView) ID() ViewID    { return ViewAssessmentResults }
func (v *assessmentResultsView) Title() string { return "Results" }
func (v *assessmentResultsView) Init() tea.Cmd { return nil }

func (v *assessmentResultsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
	}
}

func (v *assessmentResultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "d" {
		return v, v.state.Nav.NavigateTo(app.RouteDashboard, nil)
	}
	return v, nil
}

func (v *assessmentResultsView) View() string {
	return formatter.FormatAssessmentResult(v.result, v.questions, v.maxScore)
}

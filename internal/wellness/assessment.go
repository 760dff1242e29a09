package wellness

import (
	"slices"

	"github.com/alexanderramin/mindmate/internal/domain"
)

// Assessment is the onboarding questionnaire: Question(0) … Question(N-1),
// then Submitted. Answers are recorded per index so stepping back and forth
// restores earlier choices.
type Assessment struct {
	questions []domain.Question
	current   int
	answers   []*int // recorded answer per question, nil until answered
	pending   *int
	submitted bool
	result    *domain.AssessmentResult
}

func NewAssessment(questions []domain.Question) *Assessment {
	return &Assessment{
		questions: slices.Clone(questions),
		answers:   make([]*int, len(questions)),
	}
}

func (a *Assessment) Len() int                     { return len(a.questions) }
func (a *Assessment) Index() int                   { return a.current }
func (a *Assessment) Submitted() bool              { return a.submitted }
func (a *Assessment) IsLast() bool                 { return a.current == len(a.questions)-1 }
func (a *Assessment) CanGoBack() bool              { return !a.submitted && a.current > 0 }
func (a *Assessment) CanAdvance() bool             { return !a.submitted && a.pending != nil }
func (a *Assessment) Questions() []domain.Question { return slices.Clone(a.questions) }

// Current returns the question being asked; ok is false once submitted or
// when there are no questions.
func (a *Assessment) Current() (domain.Question, bool) {
	if a.submitted || a.current >= len(a.questions) {
		return domain.Question{}, false
	}
	return a.questions[a.current], true
}

// Pending returns the selected, not yet recorded answer.
func (a *Assessment) Pending() (int, bool) {
	if a.pending == nil {
		return 0, false
	}
	return *a.pending, true
}

// SelectAnswer sets the pending answer for the current question without
// advancing. Values outside the question's option domain are rejected.
func (a *Assessment) SelectAnswer(v int) bool {
	q, ok := a.Current()
	if !ok || !q.HasValue(v) {
		return false
	}
	a.pending = &v
	return true
}

// Next records the pending answer and moves forward. On the last question
// it scores the assessment, enters the Submitted state and returns the
// result. Without a pending answer it does nothing.
func (a *Assessment) Next() (*domain.AssessmentResult, bool) {
	if !a.CanAdvance() {
		return nil, false
	}
	v := *a.pending
	a.answers[a.current] = &v

	if a.current < len(a.questions)-1 {
		a.current++
		a.pending = cloneAnswer(a.answers[a.current])
		return nil, true
	}

	answers := make([]int, len(a.answers))
	score := 0
	for i, ans := range a.answers {
		if ans != nil {
			answers[i] = *ans
			score += *ans
		}
	}
	a.submitted = true
	a.pending = nil
	a.result = &domain.AssessmentResult{Score: score, Answers: answers}
	return a.result, true
}

// Back returns to the previous question with its recorded answer pending.
// It does nothing on the first question.
func (a *Assessment) Back() bool {
	if !a.CanGoBack() {
		return false
	}
	a.current--
	a.pending = cloneAnswer(a.answers[a.current])
	return true
}

// Result returns the scored result once submitted.
func (a *Assessment) Result() (*domain.AssessmentResult, bool) {
	return a.result, a.result != nil
}

// ProgressPct is the percentage shown in the questionnaire header.
func (a *Assessment) ProgressPct() float64 {
	if len(a.questions) == 0 {
		return 0
	}
	return float64(a.current+1) / float64(len(a.questions)) * 100
}

// MaxScore is the highest score the questionnaire can produce.
func (a *Assessment) MaxScore() int {
	total := 0
	for _, q := range a.questions {
		total += q.MaxValue()
	}
	return total
}

func cloneAnswer(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/mindmate/internal/domain"
)

var fixtureSeq atomic.Int64

func nextID() string {
	return fmt.Sprintf("t%d", fixtureSeq.Add(1))
}

// Goal options
type GoalOption func(*domain.Goal)

func WithPeriod(p domain.Period) GoalOption {
	return func(g *domain.Goal) { g.Period = p }
}

func WithProgress(progress, total int) GoalOption {
	return func(g *domain.Goal) {
		g.Progress = progress
		g.Total = total
	}
}

func WithCompleted() GoalOption {
	return func(g *domain.Goal) {
		g.Completed = true
		g.Progress = g.Total
	}
}

func WithDueDate(d time.Time) GoalOption {
	return func(g *domain.Goal) { g.DueDate = d }
}

// NewTestGoal returns an open daily goal with a single step, due tomorrow.
func NewTestGoal(title string, opts ...GoalOption) domain.Goal {
	g := domain.Goal{
		ID:      nextID(),
		Title:   title,
		Period:  domain.PeriodDaily,
		Total:   1,
		DueDate: time.Now().UTC().AddDate(0, 0, 1),
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// NewTestMoodEntry returns an entry logged ago before now.
func NewTestMoodEntry(m domain.Mood, intensity int, now time.Time, ago time.Duration) domain.MoodEntry {
	return domain.MoodEntry{
		Mood:      m,
		Intensity: intensity,
		Timestamp: now.Add(-ago),
	}
}

// NewTestProfile returns a filled-in profile with two interests.
func NewTestProfile() domain.Profile {
	return domain.Profile{
		Name:        "Sam Rivera",
		Email:       "sam@example.com",
		Age:         "29",
		PrimaryGoal: domain.GoalSleep,
		Interests:   []string{"mindfulness", "sleep"},
		DailyFocus:  "Wind down earlier",
	}
}

// NewTestQuestions returns n questions scored 0 to 3.
func NewTestQuestions(n int) []domain.Question {
	qs := make([]domain.Question, n)
	for i := range qs {
		qs[i] = domain.Question{
			Prompt: fmt.Sprintf("Question %d", i+1),
			Options: []domain.Option{
				{Value: 0, Label: "Not at all"},
				{Value: 1, Label: "Several days"},
				{Value: 2, Label: "More than half the days"},
				{Value: 3, Label: "Nearly every day"},
			},
		}
	}
	return qs
}

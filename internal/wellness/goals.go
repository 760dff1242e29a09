package wellness

import (
	"slices"
	"strings"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/google/uuid"
)

// customGoalDescription is attached to goals created from the add form.
const customGoalDescription = "Custom goal"

// GoalBoard is the goal tracker with its daily/weekly/monthly tabs.
type GoalBoard struct {
	clock Clock
	newID func() string

	active domain.Period
	goals  []domain.Goal
}

// GoalBoardOption configures a GoalBoard.
type GoalBoardOption func(*GoalBoard)

// WithGoalIDs overrides the id generator used for new goals.
func WithGoalIDs(fn func() string) GoalBoardOption {
	return func(b *GoalBoard) { b.newID = fn }
}

// NewGoalBoard seeds a board with goals; the daily tab is active.
func NewGoalBoard(goals []domain.Goal, clock Clock, opts ...GoalBoardOption) *GoalBoard {
	b := &GoalBoard{
		clock:  clockOrNow(clock),
		newID:  uuid.NewString,
		active: domain.PeriodDaily,
		goals:  slices.Clone(goals),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SelectTab switches the visible period. Unknown periods are ignored.
func (b *GoalBoard) SelectTab(p domain.Period) bool {
	if _, err := domain.ParsePeriod(string(p)); err != nil {
		return false
	}
	b.active = p
	return true
}

func (b *GoalBoard) ActiveTab() domain.Period { return b.active }

// ToggleComplete flips completion of the goal with the given id, resetting
// its progress to Total or 0. Returns false when no goal has that id.
func (b *GoalBoard) ToggleComplete(id string) bool {
	for i := range b.goals {
		if b.goals[i].ID == id {
			b.goals[i].ToggleComplete()
			return true
		}
	}
	return false
}

// AddGoal appends a one-step goal to the active period, due one period
// window from now. Blank titles are rejected.
func (b *GoalBoard) AddGoal(title string) (domain.Goal, bool) {
	if strings.TrimSpace(title) == "" {
		return domain.Goal{}, false
	}
	g := domain.Goal{
		ID:          b.newID(),
		Title:       title,
		Description: customGoalDescription,
		Period:      b.active,
		Progress:    0,
		Total:       1,
		DueDate:     b.clock().AddDate(0, 0, b.active.DueWindowDays()),
	}
	b.goals = append(b.goals, g)
	return g, true
}

// Visible returns the goals of the active period in insertion order.
func (b *GoalBoard) Visible() []domain.Goal {
	var out []domain.Goal
	for _, g := range b.goals {
		if g.Period == b.active {
			out = append(out, g)
		}
	}
	return out
}

// All returns every goal regardless of period.
func (b *GoalBoard) All() []domain.Goal {
	return slices.Clone(b.goals)
}

// Get returns the goal with the given id.
func (b *GoalBoard) Get(id string) (domain.Goal, bool) {
	for _, g := range b.goals {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Goal{}, false
}

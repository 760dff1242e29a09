package domain

import "time"

type Goal struct {
	ID          string
	Title       string
	Description string
	Period      Period
	Progress    int
	Total       int
	Completed   bool
	DueDate     time.Time
}

// ToggleComplete flips completion. Marking complete fills progress to Total;
// marking incomplete resets progress to 0 rather than restoring the prior count.
func (g *Goal) ToggleComplete() {
	g.Completed = !g.Completed
	if g.Completed {
		g.Progress = g.Total
	} else {
		g.Progress = 0
	}
}

// Fraction returns progress/total in [0, 1].
func (g *Goal) Fraction() float64 {
	if g.Total <= 0 {
		return 0
	}
	f := float64(g.Progress) / float64(g.Total)
	if f > 1 {
		return 1
	}
	return f
}

// ShowsProgress reports whether a progress bar is meaningful for this goal:
// only open goals that need more than one step.
func (g *Goal) ShowsProgress() bool {
	return !g.Completed && g.Total > 1
}

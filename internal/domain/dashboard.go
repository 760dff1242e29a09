package domain

import "time"

// QuickAction is a dashboard shortcut to another part of the app.
type QuickAction struct {
	Title string
	Route string
}

// Recommendation is one of the dashboard's suggested activities for today.
type Recommendation struct {
	Title   string
	Minutes int
	Benefit string
}

// DashboardStats are the static summary cards at the top of the dashboard.
type DashboardStats struct {
	ActivitiesDone   int
	ActivitiesTotal  int
	WeeklyStreakDays int
	CurrentMood      string
	MoodLoggedAt     time.Time
}

// TodayProgressPct returns the share of today's activities completed, 0–100.
func (s DashboardStats) TodayProgressPct() int {
	if s.ActivitiesTotal <= 0 {
		return 0
	}
	return s.ActivitiesDone * 100 / s.ActivitiesTotal
}

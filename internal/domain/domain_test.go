package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMood(t *testing.T) {
	for _, m := range Moods {
		got, err := ParseMood(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMood("Happy")
	assert.Error(t, err, "parsing is case-sensitive")
	_, err = ParseMood("")
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("weekly")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeekly, p)

	_, err = ParsePeriod("yearly")
	assert.ErrorContains(t, err, `unknown period "yearly"`)
}

func TestPeriod_DueWindowDays(t *testing.T) {
	assert.Equal(t, 1, PeriodDaily.DueWindowDays())
	assert.Equal(t, 7, PeriodWeekly.DueWindowDays())
	assert.Equal(t, 30, PeriodMonthly.DueWindowDays())
}

func TestPrimaryGoal_Label(t *testing.T) {
	assert.Equal(t, "Improve Sleep", GoalSleep.Label())
	assert.Equal(t, "Build Confidence", GoalConfidence.Label())
	assert.Equal(t, "custom", PrimaryGoal("custom").Label())
}

func TestClampIntensity(t *testing.T) {
	assert.Equal(t, MinIntensity, ClampIntensity(-10))
	assert.Equal(t, 4, ClampIntensity(4))
	assert.Equal(t, MaxIntensity, ClampIntensity(99))
}

func TestGoal_ToggleComplete(t *testing.T) {
	g := Goal{Progress: 2, Total: 5}

	g.ToggleComplete()
	assert.True(t, g.Completed)
	assert.Equal(t, 5, g.Progress)

	g.ToggleComplete()
	assert.False(t, g.Completed)
	assert.Equal(t, 0, g.Progress)
}

func TestGoal_FractionAndShowsProgress(t *testing.T) {
	tests := []struct {
		name      string
		g         Goal
		wantFrac  float64
		wantShows bool
	}{
		{"partial multi-step", Goal{Progress: 2, Total: 5}, 0.4, true},
		{"single step", Goal{Progress: 0, Total: 1}, 0, false},
		{"completed", Goal{Progress: 5, Total: 5, Completed: true}, 1, false},
		{"zero total", Goal{Total: 0}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantFrac, tt.g.Fraction(), 1e-9)
			assert.Equal(t, tt.wantShows, tt.g.ShowsProgress())
		})
	}
}

func TestQuestion_HasValueAndMax(t *testing.T) {
	q := Question{Options: []Option{{Value: 3}, {Value: 0}, {Value: 1}}}
	assert.True(t, q.HasValue(0))
	assert.False(t, q.HasValue(2))
	assert.Equal(t, 3, q.MaxValue())
	assert.Zero(t, Question{}.MaxValue())

	neg := Question{Options: []Option{{Value: -2}, {Value: -1}}}
	assert.Equal(t, -1, neg.MaxValue())
}

func TestProgram_CompletionRatio(t *testing.T) {
	p := Program{Modules: 12, CompletedModules: 8}
	assert.InDelta(t, 2.0/3.0, p.CompletionRatio(), 1e-9)

	empty := Program{}
	assert.Zero(t, empty.CompletionRatio())
}

func TestProfile_WithInterestToggled(t *testing.T) {
	p := Profile{Interests: []string{"sleep", "cbt"}}

	removed := p.WithInterestToggled("sleep")
	assert.Equal(t, []string{"cbt"}, removed.Interests)
	assert.Equal(t, []string{"sleep", "cbt"}, p.Interests, "original is untouched")

	added := removed.WithInterestToggled("sleep")
	assert.Equal(t, []string{"cbt", "sleep"}, added.Interests)
}

func TestProfile_FirstName(t *testing.T) {
	assert.Equal(t, "Sarah", Profile{Name: "Sarah Johnson"}.FirstName())
	assert.Equal(t, "Cher", Profile{Name: "Cher"}.FirstName())
	assert.Empty(t, Profile{}.FirstName())
}

func TestDashboardStats_TodayProgressPct(t *testing.T) {
	assert.Equal(t, 60, DashboardStats{ActivitiesDone: 3, ActivitiesTotal: 5}.TodayProgressPct())
	assert.Zero(t, DashboardStats{}.TodayProgressPct())
}

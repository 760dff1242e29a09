package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const todayBarWidth = 16

// Greeting returns the salutation for the time of day.
func Greeting(name string, now time.Time) string {
	part := "evening"
	switch h := now.Hour(); {
	case h < 12:
		part = "morning"
	case h < 18:
		part = "afternoon"
	}
	return fmt.Sprintf("Good %s, %s!", part, name)
}

func statCard(title, body string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(30).
		Render(StyleHeader.Render(title) + "\n" + body)
}

// FormatDashboardStats renders the three summary cards side by side.
func FormatDashboardStats(s domain.DashboardStats, now time.Time) string {
	progress := RenderStyledProgress(float64(s.TodayProgressPct())/100, todayBarWidth, StyleGreen) + "\n" +
		Dim(fmt.Sprintf("%d of %d activities completed", s.ActivitiesDone, s.ActivitiesTotal))
	streak := Bold(fmt.Sprintf("%d days", s.WeeklyStreakDays)) + "\n" + Dim("Keep up the great work!")
	mood := MoodLabel(domain.Mood(strings.ToLower(s.CurrentMood))) + "\n" +
		Dim("Logged "+LoggedAgo(s.MoodLoggedAt, now))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Today's Progress", progress), " ",
		statCard("Weekly Streak", streak), " ",
		statCard("Current Mood", mood))
}

// FormatQuickActions renders the quick action shortcuts. cursor is -1 for none.
func FormatQuickActions(actions []domain.QuickAction, cursor int) string {
	parts := make([]string, 0, len(actions))
	for i, a := range actions {
		if i == cursor {
			parts = append(parts, StyleHeader.Render("▸ "+a.Title))
		} else {
			parts = append(parts, StyleFg.Render("  "+a.Title))
		}
	}
	return strings.Join(parts, "  ")
}

// FormatRecommendations renders today's suggested activities.
func FormatRecommendations(recs []domain.Recommendation) string {
	if len(recs) == 0 {
		return Dim("Nothing recommended today.")
	}
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, fmt.Sprintf("%s %s\n  %s",
			StyleBlue.Render("◆"), Bold(r.Title),
			Dim(fmt.Sprintf("%s • %s", FormatMinutes(r.Minutes), r.Benefit))))
	}
	return RenderBox("Recommended for You Today", strings.Join(lines, "\n"))
}

package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueLabel renders a goal's due date relative to now. Overdue and
// imminent dates are highlighted; completed goals stay dim.
func DueLabel(due, now time.Time, completed bool) string {
	text := "Due " + RelativeDateFrom(due, now)
	if completed {
		return StyleDim.Render(text)
	}
	days := int(math.Round(due.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 1:
		return StyleYellow.Render(text)
	default:
		return StyleDim.Render(text)
	}
}

// LoggedAgo renders how long ago something happened, e.g. "2 hours ago".
func LoggedAgo(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// EntryDate returns the short date shown beside a mood entry.
func EntryDate(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2")
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0 min"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%d min", m)
}

// Participants renders an enrollment count with thousands separators.
func Participants(n int) string {
	return humanize.Comma(int64(n)) + " participants"
}

// Rating renders a program rating as "★ 4.8".
func Rating(r float64) string {
	return StyleYellow.Render("★") + " " + fmt.Sprintf("%.1f", r)
}

// Checkbox renders a done/not-done marker.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[✔]")
	}
	return StyleDim.Render("[ ]")
}

// Cursor renders the selection marker for list rows.
func Cursor(selected bool) string {
	if selected {
		return StyleHeader.Render("▸ ")
	}
	return "  "
}

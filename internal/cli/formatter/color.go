package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// MoodStyle returns the color a mood is drawn in.
func MoodStyle(m domain.Mood) lipgloss.Style {
	switch m {
	case domain.MoodHappy:
		return StyleYellow
	case domain.MoodCalm:
		return StyleGreen
	case domain.MoodSad:
		return StyleBlue
	case domain.MoodAnxious:
		return StylePurple
	default:
		return StyleDim
	}
}

// MoodGlyph returns the symbol shown next to a mood name.
func MoodGlyph(m domain.Mood) string {
	switch m {
	case domain.MoodHappy:
		return "☺"
	case domain.MoodCalm:
		return "♥"
	case domain.MoodNeutral:
		return "•"
	case domain.MoodSad:
		return "☹"
	case domain.MoodAnxious:
		return "☂"
	default:
		return "?"
	}
}

// MoodLabel renders a mood as a colored glyph plus its capitalized name.
func MoodLabel(m domain.Mood) string {
	return MoodStyle(m).Render(MoodGlyph(m) + " " + capitalize(string(m)))
}

// PeriodGlyph returns the tab symbol for a goal period.
func PeriodGlyph(p domain.Period) string {
	switch p {
	case domain.PeriodDaily:
		return "◷"
	case domain.PeriodWeekly:
		return "▦"
	default:
		return "◎"
	}
}

// AchievementGlyph returns the badge symbol for an achievement category.
func AchievementGlyph(category string) string {
	switch category {
	case "Milestone":
		return "★"
	case "Streak":
		return "▦"
	case "Tracking":
		return "◎"
	case "Sleep":
		return "☾"
	case "Training":
		return "ϟ"
	case "Points":
		return "♛"
	default:
		return "◆"
	}
}

// DifficultyStyle returns the badge color for a program difficulty.
func DifficultyStyle(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyBeginner, domain.DifficultyIntermediate:
		return StyleGreen
	case domain.DifficultyAdvanced:
		return StyleRed
	default:
		return StyleDim
	}
}

// GoalBarStyle picks the progress bar color from the completed percentage.
func GoalBarStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 100:
		return StyleGreen
	case pct >= 75:
		return StyleBlue
	case pct >= 50:
		return StyleGreen
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

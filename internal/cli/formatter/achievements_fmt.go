package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/wellness"
)

const achievementBarWidth = 10

func formatAchievementRow(a domain.Achievement) string {
	glyph := AchievementGlyph(a.Category)
	var b strings.Builder
	if a.Unlocked {
		b.WriteString(fmt.Sprintf("%s %s  %s  %s",
			StyleGreen.Render(glyph),
			Bold(a.Title),
			StylePurple.Render(a.Category),
			StyleYellow.Render(fmt.Sprintf("+%d pts", a.Points))))
	} else {
		b.WriteString(fmt.Sprintf("%s %s  %s  %s",
			Dim(glyph),
			StyleFg.Render(a.Title),
			Dim(a.Category),
			Dim(fmt.Sprintf("%d pts", a.Points))))
	}
	b.WriteString("\n  " + Dim(a.Description))
	if frac, ok := wellness.LockedProgress(a); ok {
		b.WriteString(fmt.Sprintf("\n  %s %s",
			RenderCompactBar(frac, achievementBarWidth, true),
			Dim(fmt.Sprintf("%d/%d", a.Progress, a.Total))))
	}
	return b.String()
}

// FormatAchievements renders the achievements panel with its unlocked and
// points summary.
func FormatAchievements(p *wellness.AchievementPanel) string {
	all := p.All()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n\n",
		Bold(fmt.Sprintf("%d/%d", p.UnlockedCount(), len(all))), Dim("unlocked"),
		StyleYellow.Render(fmt.Sprintf("%d", p.TotalPoints())), Dim("points")))

	rows := make([]string, 0, len(all))
	for _, a := range all {
		rows = append(rows, formatAchievementRow(a))
	}
	b.WriteString(strings.Join(rows, "\n\n"))
	return RenderBox("Achievements", b.String())
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/wellness"
)

const goalBarWidth = 12

// FormatGoalTabs renders the period tabs with the active one highlighted.
func FormatGoalTabs(active domain.Period) string {
	tabs := make([]string, 0, len(domain.Periods))
	for _, p := range domain.Periods {
		label := PeriodGlyph(p) + " " + capitalize(string(p))
		if p == active {
			tabs = append(tabs, StyleHeader.Render("["+label+"]"))
		} else {
			tabs = append(tabs, Dim(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// FormatGoalRow renders one goal line with its checkbox, due date and,
// for multi-step open goals, a progress bar.
func FormatGoalRow(g domain.Goal, now time.Time, selected bool) string {
	title := StyleFg.Render(g.Title)
	if g.Completed {
		title = StyleDim.Strikethrough(true).Render(g.Title)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s%s %s  %s", Cursor(selected), Checkbox(g.Completed), title, DueLabel(g.DueDate, now, g.Completed)))
	if g.Completed {
		b.WriteString("  " + StyleGreen.Render("Completed"))
	}
	b.WriteString("\n")
	b.WriteString("      " + Dim(g.Description))
	if g.ShowsProgress() {
		pct := g.Fraction() * 100
		b.WriteString("\n      " + RenderStyledProgress(g.Fraction(), goalBarWidth, GoalBarStyle(pct)) +
			Dim(fmt.Sprintf("  %d/%d", g.Progress, g.Total)))
	}
	return b.String()
}

// FormatGoalList renders the goals of the active tab. cursor indexes the
// visible list, -1 for none.
func FormatGoalList(goals []domain.Goal, now time.Time, cursor int) string {
	if len(goals) == 0 {
		return Dim("No goals for this period yet.")
	}
	rows := make([]string, 0, len(goals))
	for i, g := range goals {
		rows = append(rows, FormatGoalRow(g, now, i == cursor))
	}
	return strings.Join(rows, "\n")
}

// FormatGoals renders the goal tracker panel for the board's active tab.
func FormatGoals(b *wellness.GoalBoard, now time.Time, cursor int) string {
	visible := b.Visible()
	done := 0
	for _, g := range visible {
		if g.Completed {
			done++
		}
	}

	var sb strings.Builder
	sb.WriteString(FormatGoalTabs(b.ActiveTab()) + "\n\n")
	sb.WriteString(FormatGoalList(visible, now, cursor) + "\n\n")
	sb.WriteString(Dim(fmt.Sprintf("%d of %d completed", done, len(visible))))
	return RenderBox("Your Goals", sb.String())
}

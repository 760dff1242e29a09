package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/wellness"
)

const programBarWidth = 16

// FormatCategoryBar renders the category filter buttons.
func FormatCategoryBar(categories []string, selected string) string {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == selected {
			parts = append(parts, StyleHeader.Render("["+c+"]"))
		} else {
			parts = append(parts, Dim(" "+c+" "))
		}
	}
	return strings.Join(parts, " ")
}

func programMeta(p domain.Program) string {
	return strings.Join([]string{
		Dim("◷ " + p.Duration),
		DifficultyStyle(p.Difficulty).Render(string(p.Difficulty)),
		Rating(p.Rating),
		Dim(fmt.Sprintf("%d modules", p.Modules)),
	}, "  ")
}

// FormatActiveProgram renders the "current program" card with module progress.
func FormatActiveProgram(p domain.Program) string {
	var b strings.Builder
	b.WriteString(Bold(p.Title) + "  " + StyleGreen.Render("Active") + "\n")
	b.WriteString(Dim(p.Description) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		Dim("◷ "+p.Duration),
		DifficultyStyle(p.Difficulty).Render(string(p.Difficulty)),
		Dim(Participants(p.Participants))))
	b.WriteString(fmt.Sprintf("Progress %s  %s",
		RenderStyledProgress(p.CompletionRatio(), programBarWidth, StyleGreen),
		Dim(fmt.Sprintf("%d/%d modules", p.CompletedModules, p.Modules))))
	return b.String()
}

// FormatProgramRow renders one program in the filtered list.
func FormatProgramRow(p domain.Program, selected bool) string {
	badges := ""
	if p.IsActive {
		badges += "  " + StyleGreen.Render("Active")
	}
	if p.IsRecommended {
		badges += "  " + StyleBlue.Render("Recommended")
	}
	var b strings.Builder
	b.WriteString(Cursor(selected) + Bold(p.Title) + "  " + StylePurple.Render(p.Category) + badges + "\n")
	b.WriteString("    " + Dim(p.Description) + "\n")
	b.WriteString("    " + programMeta(p) + "  " + Dim(Participants(p.Participants)))
	return b.String()
}

// FormatProgramList renders the filtered programs. cursor is -1 for none.
func FormatProgramList(programs []domain.Program, cursor int) string {
	if len(programs) == 0 {
		return Dim("No programs in this category.")
	}
	rows := make([]string, 0, len(programs))
	for i, p := range programs {
		rows = append(rows, FormatProgramRow(p, i == cursor))
	}
	return strings.Join(rows, "\n\n")
}

// FormatPrograms renders the full programs page: current program,
// recommendations and the filtered catalog.
func FormatPrograms(c *wellness.ProgramCatalog, cursor int) string {
	var b strings.Builder

	if active, ok := c.ActiveProgram(); ok {
		b.WriteString(RenderBox("Your Current Program", FormatActiveProgram(active)) + "\n\n")
	}

	if recs := c.Recommended(); len(recs) > 0 {
		lines := make([]string, 0, len(recs))
		for _, p := range recs {
			lines = append(lines, StyleBlue.Render("◆ ")+Bold(p.Title)+"\n  "+programMeta(p))
		}
		b.WriteString(RenderBox("Recommended for You", strings.Join(lines, "\n")) + "\n\n")
	}

	all := FormatCategoryBar(c.Categories(), c.Category()) + "\n\n" + FormatProgramList(c.Visible(), cursor)
	b.WriteString(RenderBox("All Programs", all))
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"
)

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

// renderHelpCategory renders a single category section with header and command rows.
func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-24s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the command bar reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Navigation",
			commands: [][]string{
				{"dashboard", "Back to the dashboard"},
				{"programs", "Browse wellness programs"},
				{"profile", "Edit your profile"},
				{"assessment", "Take the wellness assessment"},
			},
		},
		{
			title: "Tracking",
			commands: [][]string{
				{"mood", "Log how you feel"},
				{"goals", "Daily, weekly and monthly goals"},
				{"achievements", "Badges and points"},
			},
		},
		{
			title: "Session",
			commands: [][]string{
				{"go <route>", "Open a route, e.g. go /programs"},
				{"clear", "Dismiss command output"},
				{"signout", "Clear local data and quit"},
				{"help", "Show this command reference"},
				{"quit", "Quit mindmate"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Press : to open the command bar, esc to go back."))

	return RenderBox("Commands", b.String())
}

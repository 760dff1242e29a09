package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mindmate/internal/domain"
)

func profileField(label, value string) string {
	if value == "" {
		value = Dim("--")
	} else {
		value = StyleFg.Render(value)
	}
	return fmt.Sprintf("%-14s %s", Dim(label), value)
}

// FormatInterests renders every interest option, marking the selected ones.
// cursor indexes domain.InterestOptions, -1 for none.
func FormatInterests(p domain.Profile, cursor int) string {
	parts := make([]string, 0, len(domain.InterestOptions))
	for i, tag := range domain.InterestOptions {
		chip := Dim(tag)
		if p.HasInterest(tag) {
			chip = StyleGreen.Render("✔ " + tag)
		}
		if i == cursor {
			chip = StyleHeader.Render("›") + chip
		}
		parts = append(parts, chip)
	}
	return strings.Join(parts, "  ")
}

// FormatProfile renders the profile record.
func FormatProfile(p domain.Profile) string {
	var b strings.Builder
	b.WriteString(Header("Personal information") + "\n")
	b.WriteString(profileField("Name", p.Name) + "\n")
	b.WriteString(profileField("Email", p.Email) + "\n")
	b.WriteString(profileField("Age", p.Age) + "\n\n")

	b.WriteString(Header("Wellness goals") + "\n")
	goal := ""
	if p.PrimaryGoal != "" {
		goal = p.PrimaryGoal.Label()
	}
	b.WriteString(profileField("Primary goal", goal) + "\n")
	b.WriteString(profileField("Daily focus", p.DailyFocus) + "\n\n")

	b.WriteString(Header("Interests") + "\n")
	if len(p.Interests) == 0 {
		b.WriteString(Dim("None selected") + "\n\n")
	} else {
		chips := make([]string, 0, len(p.Interests))
		for _, tag := range p.Interests {
			chips = append(chips, StyleGreen.Render(tag))
		}
		b.WriteString(strings.Join(chips, Dim(" · ")) + "\n\n")
	}

	b.WriteString(Header("Notes") + "\n")
	if p.Notes == "" {
		b.WriteString(Dim("--"))
	} else {
		b.WriteString(StyleFg.Render(p.Notes))
	}
	return RenderBox("Profile", b.String())
}

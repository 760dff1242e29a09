package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/wellness"
)

// moodPanelEntries is how many recent entries the mood panel lists.
const moodPanelEntries = 3

const intensityBarWidth = 10

// FormatMoodPicker renders the row of mood choices. cursor is the index
// into domain.Moods under the keyboard cursor, -1 for none.
func FormatMoodPicker(cursor int, pending domain.Mood) string {
	parts := make([]string, 0, len(domain.Moods))
	for i, m := range domain.Moods {
		label := MoodGlyph(m) + " " + capitalize(string(m))
		switch {
		case m == pending:
			label = MoodStyle(m).Bold(true).Underline(true).Render(label)
		case i == cursor:
			label = MoodStyle(m).Render(label)
		default:
			label = StyleDim.Render(label)
		}
		if i == cursor {
			label = StyleHeader.Render("›") + label
		} else {
			label = " " + label
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

// FormatIntensity renders the intensity slider as a bar plus "n/10".
func FormatIntensity(n int) string {
	pct := float64(n) / float64(domain.MaxIntensity)
	return fmt.Sprintf("Intensity %s %d/%d",
		RenderCompactBar(pct, intensityBarWidth, false), n, domain.MaxIntensity)
}

// FormatMoodEntries lists mood entries newest first.
func FormatMoodEntries(entries []domain.MoodEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No mood entries yet.")
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			MoodLabel(e.Mood),
			StyleFg.Render(fmt.Sprintf("%d/%d", e.Intensity, domain.MaxIntensity)),
			Dim(EntryDate(e.Timestamp, now))))
		if e.Note != "" {
			b.WriteString("     " + Dim("“"+e.Note+"”") + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatAverageIntensity renders the average line under the entry list.
func FormatAverageIntensity(avg float64) string {
	return fmt.Sprintf("%s %s", Dim("Average intensity:"), Bold(fmt.Sprintf("%.1f/%d", avg, domain.MaxIntensity)))
}

// FormatMoodTracker renders the read-only mood panel: recent entries and
// the average intensity.
func FormatMoodTracker(t *wellness.MoodTracker, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Recent entries") + "\n")
	b.WriteString(FormatMoodEntries(t.Recent(moodPanelEntries), now) + "\n\n")
	b.WriteString(FormatAverageIntensity(t.AverageIntensity()))
	return RenderBox("How are you feeling?", b.String())
}

package wellness

import (
	"slices"

	"github.com/alexanderramin/mindmate/internal/domain"
)

// MoodTracker is the daily mood check-in.
type MoodTracker struct {
	clock Clock

	pending   domain.Mood
	intensity int
	note      string
	entries   []domain.MoodEntry // newest first, at most domain.MaxRecentEntries
}

// NewMoodTracker seeds a tracker with existing entries, which must already be newest first.
func NewMoodTracker(entries []domain.MoodEntry, clock Clock) *MoodTracker {
	seeded := slices.Clone(entries)
	if len(seeded) > domain.MaxRecentEntries {
		seeded = seeded[:domain.MaxRecentEntries]
	}
	return &MoodTracker{
		clock:     clockOrNow(clock),
		intensity: domain.DefaultIntensity,
		entries:   seeded,
	}
}

// SelectMood sets the pending mood. Unknown moods are ignored.
func (t *MoodTracker) SelectMood(m domain.Mood) bool {
	if _, err := domain.ParseMood(string(m)); err != nil {
		return false
	}
	t.pending = m
	return true
}

// SetIntensity stores n clamped to [1, 10].
func (t *MoodTracker) SetIntensity(n int) {
	t.intensity = domain.ClampIntensity(n)
}

func (t *MoodTracker) SetNote(s string) {
	t.note = s
}

func (t *MoodTracker) Pending() domain.Mood { return t.pending }
func (t *MoodTracker) Intensity() int       { return t.intensity }
func (t *MoodTracker) Note() string         { return t.note }

// HasPending reports whether a mood has been picked but not yet submitted.
func (t *MoodTracker) HasPending() bool { return t.pending != "" }

// Submit commits the pending selection as the newest entry and resets the
// form. It does nothing and returns false when no mood is selected.
func (t *MoodTracker) Submit() bool {
	if t.pending == "" {
		return false
	}
	entry := domain.MoodEntry{
		Mood:      t.pending,
		Intensity: t.intensity,
		Timestamp: t.clock(),
		Note:      t.note,
	}
	keep := min(len(t.entries), domain.MaxRecentEntries-1)
	t.entries = append([]domain.MoodEntry{entry}, t.entries[:keep]...)

	t.pending = ""
	t.intensity = domain.DefaultIntensity
	t.note = ""
	return true
}

// Entries returns a copy of the recent entries, newest first.
func (t *MoodTracker) Entries() []domain.MoodEntry {
	return slices.Clone(t.entries)
}

// Recent returns at most n of the newest entries.
func (t *MoodTracker) Recent(n int) []domain.MoodEntry {
	if n > len(t.entries) {
		n = len(t.entries)
	}
	if n < 0 {
		n = 0
	}
	return slices.Clone(t.entries[:n])
}

// AverageIntensity is the mean intensity over the recent entries, 0 when empty.
func (t *MoodTracker) AverageIntensity() float64 {
	if len(t.entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range t.entries {
		sum += e.Intensity
	}
	return float64(sum) / float64(len(t.entries))
}

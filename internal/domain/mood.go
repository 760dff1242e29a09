package domain

import "time"

const (
	MinIntensity     = 1
	MaxIntensity     = 10
	DefaultIntensity = 5

	// MaxRecentEntries bounds the mood tracker's recent-entries list.
	MaxRecentEntries = 7
)

type MoodEntry struct {
	Mood      Mood
	Intensity int
	Timestamp time.Time
	Note      string // empty when no note was given
}

// ClampIntensity forces n into [MinIntensity, MaxIntensity].
func ClampIntensity(n int) int {
	if n < MinIntensity {
		return MinIntensity
	}
	if n > MaxIntensity {
		return MaxIntensity
	}
	return n
}

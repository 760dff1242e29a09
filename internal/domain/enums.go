package domain

import "fmt"

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
)

// Moods is the order the mood picker presents its choices in.
var Moods = []Mood{MoodHappy, MoodCalm, MoodNeutral, MoodSad, MoodAnxious}

// ParseMood converts a user-supplied mood name into a Mood.
func ParseMood(s string) (Mood, error) {
	for _, m := range Moods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mood %q", s)
}

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Periods is the tab order of the goal tracker.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

// ParsePeriod converts a user-supplied period name into a Period.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q (want daily, weekly or monthly)", s)
}

// DueWindowDays is how far ahead a freshly added goal in this period is due.
func (p Period) DueWindowDays() int {
	switch p {
	case PeriodWeekly:
		return 7
	case PeriodMonthly:
		return 30
	default:
		return 1
	}
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

type PrimaryGoal string

const (
	GoalAnxiety    PrimaryGoal = "anxiety"
	GoalSleep      PrimaryGoal = "sleep"
	GoalStress     PrimaryGoal = "stress"
	GoalConfidence PrimaryGoal = "confidence"
	GoalEnergy     PrimaryGoal = "energy"
	GoalFocus      PrimaryGoal = "focus"
)

// PrimaryGoals is the option order of the profile's primary goal select.
var PrimaryGoals = []PrimaryGoal{GoalAnxiety, GoalSleep, GoalStress, GoalConfidence, GoalEnergy, GoalFocus}

// Label returns the human-readable option label.
func (g PrimaryGoal) Label() string {
	switch g {
	case GoalAnxiety:
		return "Reduce Anxiety"
	case GoalSleep:
		return "Improve Sleep"
	case GoalStress:
		return "Manage Stress"
	case GoalConfidence:
		return "Build Confidence"
	case GoalEnergy:
		return "Increase Energy"
	case GoalFocus:
		return "Improve Focus"
	default:
		return string(g)
	}
}

// InterestOptions is the canonical list of profile interest tags.
var InterestOptions = []string{
	"mindfulness", "meditation", "breathing", "sleep", "stress-management",
	"cbt", "self-care", "energy", "social-skills", "trauma-healing",
}

package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is the top-level YAML structure of a seed catalog.
type Schema struct {
	Profile           ProfileSeed          `yaml:"profile"`
	Dashboard         DashboardSeed        `yaml:"dashboard"`
	QuickActions      []QuickActionSeed    `yaml:"quick_actions"`
	Recommendations   []RecommendationSeed `yaml:"recommendations"`
	MoodEntries       []MoodEntrySeed      `yaml:"mood_entries"`
	Goals             []GoalSeed           `yaml:"goals"`
	Achievements      []AchievementSeed    `yaml:"achievements"`
	ProgramCategories []string             `yaml:"program_categories"`
	Programs          []ProgramSeed        `yaml:"programs"`
	Questions         []QuestionSeed       `yaml:"questions"`
}

type ProfileSeed struct {
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Age         string   `yaml:"age"`
	PrimaryGoal string   `yaml:"primary_goal"`
	Interests   []string `yaml:"interests"`
	DailyFocus  string   `yaml:"daily_focus"`
	Notes       string   `yaml:"notes"`
}

type DashboardSeed struct {
	ActivitiesDone     int    `yaml:"activities_done"`
	ActivitiesTotal    int    `yaml:"activities_total"`
	WeeklyStreakDays   int    `yaml:"weekly_streak_days"`
	CurrentMood        string `yaml:"current_mood"`
	MoodLoggedHoursAgo int    `yaml:"mood_logged_hours_ago"`
}

type QuickActionSeed struct {
	Title string `yaml:"title"`
	Route string `yaml:"route"`
}

type RecommendationSeed struct {
	Title   string `yaml:"title"`
	Minutes int    `yaml:"minutes"`
	Benefit string `yaml:"benefit"`
}

// MoodEntrySeed places an entry relative to load time so the seed never goes stale.
type MoodEntrySeed struct {
	Mood      string `yaml:"mood"`
	Intensity int    `yaml:"intensity"`
	DaysAgo   int    `yaml:"days_ago"`
	Note      string `yaml:"note,omitempty"`
}

type GoalSeed struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Period      string `yaml:"period"`
	Progress    int    `yaml:"progress"`
	Total       int    `yaml:"total"`
	Completed   bool   `yaml:"completed"`
	DueInDays   int    `yaml:"due_in_days"`
}

type AchievementSeed struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Progress    int    `yaml:"progress"`
	Total       int    `yaml:"total"`
	Unlocked    bool   `yaml:"unlocked"`
	Category    string `yaml:"category"`
	Points      int    `yaml:"points"`
}

type ProgramSeed struct {
	ID               string  `yaml:"id"`
	Title            string  `yaml:"title"`
	Description      string  `yaml:"description"`
	Duration         string  `yaml:"duration"`
	Difficulty       string  `yaml:"difficulty"`
	Category         string  `yaml:"category"`
	Modules          int     `yaml:"modules"`
	CompletedModules int     `yaml:"completed_modules"`
	Rating           float64 `yaml:"rating"`
	Participants     int     `yaml:"participants"`
	Active           bool    `yaml:"active"`
	Recommended      bool    `yaml:"recommended"`
}

type QuestionSeed struct {
	Prompt  string       `yaml:"prompt"`
	Options []OptionSeed `yaml:"options"`
}

type OptionSeed struct {
	Value int    `yaml:"value"`
	Label string `yaml:"label"`
}

// ParseSchema decodes seed YAML.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing seed yaml: %w", err)
	}
	return &s, nil
}

// LoadSchemaFile reads and decodes a seed YAML file.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSchema(data)
}

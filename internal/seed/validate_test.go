package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalSchema() *Schema {
	return &Schema{
		Profile: ProfileSeed{Name: "Test User", PrimaryGoal: "sleep", Interests: []string{"sleep"}},
		Questions: []QuestionSeed{
			{Prompt: "Q1", Options: []OptionSeed{{Value: 0, Label: "No"}, {Value: 1, Label: "Yes"}}},
		},
	}
}

func TestValidateSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateSchema(validMinimalSchema()))
}

func TestValidateSchema_EmbeddedSeedIsValid(t *testing.T) {
	s, err := ParseSchema(defaultSeed)
	require.NoError(t, err)
	assert.Empty(t, ValidateSchema(s))
}

func TestValidateSchema_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Schema)
		wantErr string
	}{
		{"missing name", func(s *Schema) { s.Profile.Name = "" }, "profile.name is required"},
		{"unknown primary goal", func(s *Schema) { s.Profile.PrimaryGoal = "fame" }, `unknown goal "fame"`},
		{"duplicate interest", func(s *Schema) { s.Profile.Interests = []string{"cbt", "cbt"} }, `duplicate tag "cbt"`},
		{"unknown mood", func(s *Schema) {
			s.MoodEntries = []MoodEntrySeed{{Mood: "grumpy", Intensity: 5}}
		}, `unknown mood "grumpy"`},
		{"intensity out of range", func(s *Schema) {
			s.MoodEntries = []MoodEntrySeed{{Mood: "calm", Intensity: 11}}
		}, "intensity 11 out of range"},
		{"mood entries out of order", func(s *Schema) {
			s.MoodEntries = []MoodEntrySeed{{Mood: "calm", Intensity: 5, DaysAgo: 3}, {Mood: "sad", Intensity: 5, DaysAgo: 1}}
		}, "newest first"},
		{"too many mood entries", func(s *Schema) {
			for range 8 {
				s.MoodEntries = append(s.MoodEntries, MoodEntrySeed{Mood: "calm", Intensity: 5})
			}
		}, "exceeds the limit of 7"},
		{"duplicate goal id", func(s *Schema) {
			s.Goals = []GoalSeed{
				{ID: "1", Title: "A", Period: "daily", Total: 1},
				{ID: "1", Title: "B", Period: "daily", Total: 1},
			}
		}, `duplicate id "1"`},
		{"bad period", func(s *Schema) {
			s.Goals = []GoalSeed{{ID: "1", Title: "A", Period: "yearly", Total: 1}}
		}, `unknown period "yearly"`},
		{"progress over total", func(s *Schema) {
			s.Goals = []GoalSeed{{ID: "1", Title: "A", Period: "daily", Progress: 4, Total: 3}}
		}, "progress 4 exceeds total 3"},
		{"achievement unlock mismatch", func(s *Schema) {
			s.Achievements = []AchievementSeed{{ID: "1", Progress: 1, Total: 5, Unlocked: true}}
		}, "disagrees with progress 1/5"},
		{"bad difficulty", func(s *Schema) {
			s.Programs = []ProgramSeed{{ID: "1", Difficulty: "Expert", Modules: 1}}
		}, `invalid difficulty "Expert"`},
		{"completed modules out of range", func(s *Schema) {
			s.Programs = []ProgramSeed{{ID: "1", Difficulty: "Beginner", Modules: 2, CompletedModules: 3}}
		}, "completed_modules 3 out of range [0,2]"},
		{"two active programs", func(s *Schema) {
			s.Programs = []ProgramSeed{
				{ID: "1", Difficulty: "Beginner", Modules: 1, Active: true},
				{ID: "2", Difficulty: "Beginner", Modules: 1, Active: true},
			}
		}, "2 programs are active"},
		{"no questions", func(s *Schema) { s.Questions = nil }, "at least one question"},
		{"duplicate option value", func(s *Schema) {
			s.Questions[0].Options = append(s.Questions[0].Options, OptionSeed{Value: 1, Label: "Again"})
		}, "duplicate value 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validMinimalSchema()
			tt.mutate(s)
			errs := ValidateSchema(s)
			require.NotEmpty(t, errs)

			found := false
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.wantErr) {
					found = true
				}
			}
			assert.True(t, found, "want an error containing %q, got %v", tt.wantErr, errs)
		})
	}
}

func TestConvert_RejectsInvalid(t *testing.T) {
	s := validMinimalSchema()
	s.Profile.Name = ""
	_, err := Convert(s, testNow)
	assert.ErrorContains(t, err, "invalid seed")
}

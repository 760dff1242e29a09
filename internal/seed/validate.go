package seed

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/mindmate/internal/domain"
)

var validDifficulties = map[string]bool{
	string(domain.DifficultyBeginner):     true,
	string(domain.DifficultyIntermediate): true,
	string(domain.DifficultyAdvanced):     true,
}

// ValidateSchema checks a seed schema against the data model's invariants.
// Returns a slice of all validation errors found.
func ValidateSchema(s *Schema) []error {
	var errs []error

	errs = append(errs, validateProfile(&s.Profile)...)
	errs = append(errs, validateMoodEntries(s.MoodEntries)...)
	errs = append(errs, validateGoals(s.Goals)...)
	errs = append(errs, validateAchievements(s.Achievements)...)
	errs = append(errs, validatePrograms(s.Programs)...)
	errs = append(errs, validateQuestions(s.Questions)...)

	return errs
}

func validateProfile(p *ProfileSeed) []error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	if p.PrimaryGoal != "" {
		found := false
		for _, g := range domain.PrimaryGoals {
			if string(g) == p.PrimaryGoal {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("profile.primary_goal: unknown goal %q", p.PrimaryGoal))
		}
	}
	seen := make(map[string]bool)
	for _, tag := range p.Interests {
		if seen[tag] {
			errs = append(errs, fmt.Errorf("profile.interests: duplicate tag %q", tag))
		}
		seen[tag] = true
	}
	return errs
}

func validateMoodEntries(entries []MoodEntrySeed) []error {
	var errs []error
	if len(entries) > domain.MaxRecentEntries {
		errs = append(errs, fmt.Errorf("mood_entries: %d entries exceeds the limit of %d", len(entries), domain.MaxRecentEntries))
	}
	prev := -1
	for i, e := range entries {
		if _, err := domain.ParseMood(e.Mood); err != nil {
			errs = append(errs, fmt.Errorf("mood_entries[%d]: %w", i, err))
		}
		if e.Intensity < domain.MinIntensity || e.Intensity > domain.MaxIntensity {
			errs = append(errs, fmt.Errorf("mood_entries[%d].intensity %d out of range [%d,%d]",
				i, e.Intensity, domain.MinIntensity, domain.MaxIntensity))
		}
		if e.DaysAgo < prev {
			errs = append(errs, fmt.Errorf("mood_entries[%d]: entries must be ordered newest first", i))
		}
		prev = e.DaysAgo
	}
	return errs
}

func validateGoals(goals []GoalSeed) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, g := range goals {
		if g.ID == "" {
			errs = append(errs, fmt.Errorf("goals[%d].id is required", i))
		} else if ids[g.ID] {
			errs = append(errs, fmt.Errorf("goals[%d]: duplicate id %q", i, g.ID))
		}
		ids[g.ID] = true
		if g.Title == "" {
			errs = append(errs, fmt.Errorf("goals[%d].title is required", i))
		}
		if _, err := domain.ParsePeriod(g.Period); err != nil {
			errs = append(errs, fmt.Errorf("goals[%d]: %w", i, err))
		}
		if g.Total < 1 {
			errs = append(errs, fmt.Errorf("goals[%d].total must be >= 1", i))
		}
		if g.Progress < 0 {
			errs = append(errs, fmt.Errorf("goals[%d].progress must be >= 0", i))
		}
		if !g.Completed && g.Progress > g.Total {
			errs = append(errs, fmt.Errorf("goals[%d].progress %d exceeds total %d", i, g.Progress, g.Total))
		}
	}
	return errs
}

func validateAchievements(achievements []AchievementSeed) []error {
	var errs []error
	for i, a := range achievements {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("achievements[%d].id is required", i))
		}
		if a.Total < 1 {
			errs = append(errs, fmt.Errorf("achievements[%d].total must be >= 1", i))
		}
		if a.Points < 0 {
			errs = append(errs, fmt.Errorf("achievements[%d].points must be >= 0", i))
		}
		if a.Unlocked != (a.Progress >= a.Total) {
			errs = append(errs, fmt.Errorf("achievements[%d]: unlocked=%t disagrees with progress %d/%d",
				i, a.Unlocked, a.Progress, a.Total))
		}
	}
	return errs
}

func validatePrograms(programs []ProgramSeed) []error {
	var errs []error
	active := 0
	for i, p := range programs {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("programs[%d].id is required", i))
		}
		if !validDifficulties[p.Difficulty] {
			errs = append(errs, fmt.Errorf("programs[%d]: invalid difficulty %q", i, p.Difficulty))
		}
		if p.Modules < 1 {
			errs = append(errs, fmt.Errorf("programs[%d].modules must be >= 1", i))
		}
		if p.CompletedModules < 0 || p.CompletedModules > p.Modules {
			errs = append(errs, fmt.Errorf("programs[%d].completed_modules %d out of range [0,%d]",
				i, p.CompletedModules, p.Modules))
		}
		if p.Active {
			active++
		}
	}
	if active > 1 {
		errs = append(errs, fmt.Errorf("programs: %d programs are active, at most one allowed", active))
	}
	return errs
}

func validateQuestions(questions []QuestionSeed) []error {
	var errs []error
	if len(questions) == 0 {
		errs = append(errs, errors.New("questions: at least one question is required"))
	}
	for i, q := range questions {
		if q.Prompt == "" {
			errs = append(errs, fmt.Errorf("questions[%d].prompt is required", i))
		}
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Errorf("questions[%d]: at least one option is required", i))
		}
		values := make(map[int]bool)
		for j, o := range q.Options {
			if values[o.Value] {
				errs = append(errs, fmt.Errorf("questions[%d].options[%d]: duplicate value %d", i, j, o.Value))
			}
			values[o.Value] = true
		}
	}
	return errs
}

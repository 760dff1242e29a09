package seed

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/mindmate/internal/domain"
)

// Catalog is the fully materialized mock data every view seeds itself from.
type Catalog struct {
	Profile           domain.Profile
	Stats             domain.DashboardStats
	QuickActions      []domain.QuickAction
	Recommendations   []domain.Recommendation
	MoodEntries       []domain.MoodEntry
	Goals             []domain.Goal
	Achievements      []domain.Achievement
	ProgramCategories []string
	Programs          []domain.Program
	Questions         []domain.Question
}

// Convert validates a schema and materializes it relative to now.
func Convert(s *Schema, now time.Time) (*Catalog, error) {
	if errs := ValidateSchema(s); len(errs) > 0 {
		return nil, fmt.Errorf("invalid seed: %w", errors.Join(errs...))
	}

	c := &Catalog{
		Profile: domain.Profile{
			Name:        s.Profile.Name,
			Email:       s.Profile.Email,
			Age:         s.Profile.Age,
			PrimaryGoal: domain.PrimaryGoal(s.Profile.PrimaryGoal),
			Interests:   slices.Clone(s.Profile.Interests),
			DailyFocus:  s.Profile.DailyFocus,
			Notes:       s.Profile.Notes,
		},
		Stats: domain.DashboardStats{
			ActivitiesDone:   s.Dashboard.ActivitiesDone,
			ActivitiesTotal:  s.Dashboard.ActivitiesTotal,
			WeeklyStreakDays: s.Dashboard.WeeklyStreakDays,
			CurrentMood:      s.Dashboard.CurrentMood,
			MoodLoggedAt:     now.Add(-time.Duration(s.Dashboard.MoodLoggedHoursAgo) * time.Hour),
		},
		ProgramCategories: slices.Clone(s.ProgramCategories),
	}

	for _, qa := range s.QuickActions {
		c.QuickActions = append(c.QuickActions, domain.QuickAction{Title: qa.Title, Route: qa.Route})
	}
	for _, r := range s.Recommendations {
		c.Recommendations = append(c.Recommendations, domain.Recommendation{
			Title: r.Title, Minutes: r.Minutes, Benefit: r.Benefit,
		})
	}
	for _, e := range s.MoodEntries {
		c.MoodEntries = append(c.MoodEntries, domain.MoodEntry{
			Mood:      domain.Mood(e.Mood),
			Intensity: e.Intensity,
			Timestamp: now.AddDate(0, 0, -e.DaysAgo),
			Note:      e.Note,
		})
	}
	for _, g := range s.Goals {
		c.Goals = append(c.Goals, domain.Goal{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Period:      domain.Period(g.Period),
			Progress:    g.Progress,
			Total:       g.Total,
			Completed:   g.Completed,
			DueDate:     now.AddDate(0, 0, g.DueInDays),
		})
	}
	for _, a := range s.Achievements {
		c.Achievements = append(c.Achievements, domain.Achievement{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Progress:    a.Progress,
			Total:       a.Total,
			Unlocked:    a.Unlocked,
			Category:    a.Category,
			Points:      a.Points,
		})
	}
	for _, p := range s.Programs {
		c.Programs = append(c.Programs, domain.Program{
			ID:               p.ID,
			Title:            p.Title,
			Description:      p.Description,
			Duration:         p.Duration,
			Difficulty:       domain.Difficulty(p.Difficulty),
			Category:         p.Category,
			Modules:          p.Modules,
			CompletedModules: p.CompletedModules,
			Rating:           p.Rating,
			Participants:     p.Participants,
			IsActive:         p.Active,
			IsRecommended:    p.Recommended,
		})
	}
	for _, q := range s.Questions {
		question := domain.Question{Prompt: q.Prompt}
		for _, o := range q.Options {
			question.Options = append(question.Options, domain.Option{Value: o.Value, Label: o.Label})
		}
		c.Questions = append(c.Questions, question)
	}

	return c, nil
}

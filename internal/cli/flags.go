package cli

import (
	"strings"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/spf13/pflag"
)

// moodFlag parses --mood into a domain.Mood.
type moodFlag struct {
	mood domain.Mood
}

var _ pflag.Value = (*moodFlag)(nil)

func (f *moodFlag) String() string { return string(f.mood) }
func (f *moodFlag) Type() string   { return "mood" }

func (f *moodFlag) Set(s string) error {
	m, err := domain.ParseMood(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	f.mood = m
	return nil
}

// periodFlag parses --period into a domain.Period, defaulting to daily.
type periodFlag struct {
	period domain.Period
}

var _ pflag.Value = (*periodFlag)(nil)

func newPeriodFlag() *periodFlag { return &periodFlag{period: domain.PeriodDaily} }

func (f *periodFlag) String() string { return string(f.period) }
func (f *periodFlag) Type() string   { return "period" }

func (f *periodFlag) Set(s string) error {
	p, err := domain.ParsePeriod(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	f.period = p
	return nil
}

// primaryGoalFlag parses --goal into a domain.PrimaryGoal.
type primaryGoalFlag struct {
	goal domain.PrimaryGoal
}

var _ pflag.Value = (*primaryGoalFlag)(nil)

func (f *primaryGoalFlag) String() string { return string(f.goal) }
func (f *primaryGoalFlag) Type() string   { return "goal" }

func (f *primaryGoalFlag) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, g := range domain.PrimaryGoals {
		if string(g) == s {
			f.goal = g
			return nil
		}
	}
	return &invalidChoiceError{value: s, choices: primaryGoalNames()}
}

func primaryGoalNames() []string {
	names := make([]string, len(domain.PrimaryGoals))
	for i, g := range domain.PrimaryGoals {
		names[i] = string(g)
	}
	return names
}

// invalidChoiceError reports a flag value outside its allowed set.
type invalidChoiceError struct {
	value   string
	choices []string
}

func (e *invalidChoiceError) Error() string {
	return "unknown value " + `"` + e.value + `"` + " (want one of " + strings.Join(e.choices, ", ") + ")"
}

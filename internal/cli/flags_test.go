package cli

import (
	"testing"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodFlag(t *testing.T) {
	f := &moodFlag{}
	assert.Equal(t, "mood", f.Type())
	assert.Empty(t, f.String())

	require.NoError(t, f.Set(" Anxious "))
	assert.Equal(t, domain.MoodAnxious, f.mood)
	assert.Equal(t, "anxious", f.String())

	assert.Error(t, f.Set("furious"))
	assert.Equal(t, domain.MoodAnxious, f.mood, "a rejected value keeps the previous one")
}

func TestPeriodFlag(t *testing.T) {
	f := newPeriodFlag()
	assert.Equal(t, "period", f.Type())
	assert.Equal(t, "daily", f.String())

	require.NoError(t, f.Set("MONTHLY"))
	assert.Equal(t, domain.PeriodMonthly, f.period)

	err := f.Set("hourly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown period")
}

func TestPrimaryGoalFlag(t *testing.T) {
	f := &primaryGoalFlag{}
	assert.Equal(t, "goal", f.Type())

	require.NoError(t, f.Set("Focus"))
	assert.Equal(t, domain.GoalFocus, f.goal)

	err := f.Set("fame")
	require.Error(t, err)
	var choice *invalidChoiceError
	require.ErrorAs(t, err, &choice)
	assert.Equal(t, "fame", choice.value)
	assert.Equal(t,
		`unknown value "fame" (want one of anxiety, sleep, stress, confidence, energy, focus)`,
		err.Error())
}

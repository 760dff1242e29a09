package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestDefault_LoadsEmbeddedSeed(t *testing.T) {
	c, err := Default(testNow)
	require.NoError(t, err)

	assert.Equal(t, "Sarah Johnson", c.Profile.Name)
	assert.Equal(t, domain.GoalAnxiety, c.Profile.PrimaryGoal)
	assert.Len(t, c.QuickActions, 6)
	assert.Len(t, c.Recommendations, 3)
	assert.Len(t, c.MoodEntries, 3)
	assert.Len(t, c.Goals, 6)
	assert.Len(t, c.Achievements, 6)
	assert.Len(t, c.Programs, 6)
	assert.Len(t, c.Questions, 7)
	assert.Equal(t, 3, c.Stats.ActivitiesDone)
	assert.Equal(t, 5, c.Stats.ActivitiesTotal)
}

func TestDefault_TimesRelativeToNow(t *testing.T) {
	c := MustDefault(testNow)

	assert.Equal(t, testNow.AddDate(0, 0, -1), c.MoodEntries[0].Timestamp)
	assert.Equal(t, testNow.AddDate(0, 0, -3), c.MoodEntries[2].Timestamp)
	assert.Equal(t, testNow.Add(-2*time.Hour), c.Stats.MoodLoggedAt)
	assert.Equal(t, testNow.AddDate(0, 0, 5), c.Goals[2].DueDate)
}

func TestDefault_FreshCopyEachCall(t *testing.T) {
	a := MustDefault(testNow)
	a.Goals[0].Title = "changed"
	a.Profile.Interests[0] = "changed"

	b := MustDefault(testNow)
	assert.Equal(t, "Complete morning meditation", b.Goals[0].Title)
	assert.Equal(t, "mindfulness", b.Profile.Interests[0])
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile:
  name: Test User
questions:
  - prompt: Only question
    options:
      - {value: 0, label: No}
      - {value: 1, label: Yes}
`), 0o644))

	c, err := FromFile(path)(testNow)
	require.NoError(t, err)
	assert.Equal(t, "Test User", c.Profile.Name)
	require.Len(t, c.Questions, 1)
	assert.Equal(t, []domain.Option{{Value: 0, Label: "No"}, {Value: 1, Label: "Yes"}}, c.Questions[0].Options)
	assert.Empty(t, c.Goals)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))(testNow)
	assert.ErrorContains(t, err, "reading seed file")
}

func TestParseSchema_BadYAML(t *testing.T) {
	_, err := ParseSchema([]byte("profile: [unclosed"))
	assert.ErrorContains(t, err, "parsing seed yaml")
}

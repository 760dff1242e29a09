package wellness

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	saved []domain.Profile
	err   error
}

func (s *recordingSink) SaveProfile(_ context.Context, p domain.Profile) error {
	s.saved = append(s.saved, p)
	return s.err
}

func TestProfileEditor_ToggleInterestRemovesThenReadds(t *testing.T) {
	e := NewProfileEditor(testCatalog(t).Profile, nil)
	require.True(t, e.Profile().HasInterest("sleep"))

	e.ToggleInterest("sleep")
	assert.False(t, e.Profile().HasInterest("sleep"))

	e.ToggleInterest("sleep")
	interests := e.Profile().Interests
	assert.Equal(t, []string{"mindfulness", "stress-management", "sleep"}, interests)
}

func TestProfileEditor_SettersReplaceRecord(t *testing.T) {
	e := NewProfileEditor(testutil.NewTestProfile(), nil)
	before := e.Profile()

	e.SetName("Alex Kim")
	e.SetEmail("alex@example.com")
	e.SetAge("not a number")
	e.SetPrimaryGoal(domain.GoalFocus)
	e.SetDailyFocus("Deep work")
	e.SetNotes("Evenings only")

	after := e.Profile()
	assert.Equal(t, "Alex Kim", after.Name)
	assert.Equal(t, "alex@example.com", after.Email)
	assert.Equal(t, "not a number", after.Age)
	assert.Equal(t, domain.GoalFocus, after.PrimaryGoal)
	assert.Equal(t, "Deep work", after.DailyFocus)
	assert.Equal(t, "Evenings only", after.Notes)

	assert.Equal(t, "Sam Rivera", before.Name, "earlier copies are unaffected")
}

func TestProfileEditor_ReturnedProfileDoesNotAlias(t *testing.T) {
	e := NewProfileEditor(testutil.NewTestProfile(), nil)
	p := e.Profile()
	p.Interests[0] = "changed"

	assert.Equal(t, "mindfulness", e.Profile().Interests[0])
}

func TestProfileEditor_Save(t *testing.T) {
	sink := &recordingSink{}
	e := NewProfileEditor(testutil.NewTestProfile(), sink)
	e.ToggleInterest("energy")

	require.NoError(t, e.Save(context.Background()))
	require.Len(t, sink.saved, 1)
	assert.Equal(t, []string{"mindfulness", "sleep", "energy"}, sink.saved[0].Interests)
}

func TestProfileEditor_SaveError(t *testing.T) {
	boom := errors.New("disk full")
	e := NewProfileEditor(testutil.NewTestProfile(), &recordingSink{err: boom})
	assert.ErrorIs(t, e.Save(context.Background()), boom)
}

func TestProfileEditor_SaveWithoutSink(t *testing.T) {
	e := NewProfileEditor(testutil.NewTestProfile(), nil)
	assert.NoError(t, e.Save(context.Background()))
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/mindmate/internal/repository"
	"github.com/alexanderramin/mindmate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func TestClearSession_RemovesEveryKey(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteLocalStoreRepo(database)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "profile", "{}"))
	require.NoError(t, store.Set(ctx, "token", "abc"))

	obs := &recordingObserver{}
	svc := NewSessionService(testutil.NewTestUoW(database), obs)
	require.NoError(t, svc.ClearSession(ctx))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "clear-session", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 2, obs.events[0].Fields["keys_removed"])
}

func TestClearSession_EmptyStore(t *testing.T) {
	svc := NewSessionService(testutil.NewTestUoW(testutil.NewTestDB(t)))
	assert.NoError(t, svc.ClearSession(context.Background()))
}

func TestClearSession_RollbackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteLocalStoreRepo(database)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "profile", "{}"))

	injected := errors.New("injected clear failure")
	obs := &recordingObserver{}
	svc := NewSessionService(&testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: injected}, obs)

	err := svc.ClearSession(ctx)
	assert.ErrorIs(t, err, injected)

	_, err = store.Get(ctx, "profile")
	assert.NoError(t, err, "store is untouched after a failed sign-out")

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.ErrorIs(t, obs.events[0].Err, injected)
}

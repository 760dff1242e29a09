package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesSuccessAndFailure(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "save-profile",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"interests": 2},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "clear-session",
		Err:  errors.New("disk full"),
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=save-profile")
	assert.Contains(t, out, "interests=2")
	assert.Contains(t, out, "component=service")
	assert.Contains(t, out, `msg="use case finished"`)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="use case failed"`)
	assert.Contains(t, out, `error="disk full"`)
}

func TestLogUseCaseObserver_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelError)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "save-profile", Success: true})
	assert.Empty(t, buf.String())
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))
}

func TestCombineObservers(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers(nil))
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers([]UseCaseObserver{nil}))

	single := &recordingObserver{}
	assert.Same(t, single, combineObservers([]UseCaseObserver{nil, single}))

	a, b := &recordingObserver{}, &recordingObserver{}
	combined := combineObservers([]UseCaseObserver{a, nil, b})
	combined.ObserveUseCase(context.Background(), UseCaseEvent{Name: "clear-session"})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

func TestUseCaseRun_ReportsFieldsAndError(t *testing.T) {
	obs := &recordingObserver{}
	run := startUseCase(obs, "save-profile")
	run.set("interests", 3)
	run.finish(context.Background(), errors.New("nope"))

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.Equal(t, "save-profile", e.Name)
	assert.False(t, e.Success)
	assert.EqualError(t, e.Err, "nope")
	assert.Equal(t, 3, e.Fields["interests"])
	assert.False(t, e.StartedAt.IsZero())
}

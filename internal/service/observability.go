package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent describes one finished service call (save profile, sign out).
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// UseCaseObserver receives an event after every service call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// observers fans one event out to several observers.
type observers []UseCaseObserver

func (o observers) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range o {
		obs.ObserveUseCase(ctx, event)
	}
}

// combineObservers drops nil entries and returns a single observer.
func combineObservers(list []UseCaseObserver) UseCaseObserver {
	var out observers
	for _, obs := range list {
		if obs != nil {
			out = append(out, obs)
		}
	}
	switch len(out) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return out[0]
	}
	return out
}

// useCaseRun times one service call and reports it when finished.
type useCaseRun struct {
	observer UseCaseObserver
	name     string
	started  time.Time
	fields   map[string]any
}

func startUseCase(observer UseCaseObserver, name string) *useCaseRun {
	return &useCaseRun{
		observer: observer,
		name:     name,
		started:  time.Now().UTC(),
		fields:   map[string]any{},
	}
}

// set attaches a field to the event.
func (r *useCaseRun) set(key string, value any) {
	r.fields[key] = value
}

// finish reports the call with its final error.
func (r *useCaseRun) finish(ctx context.Context, err error) {
	r.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      r.name,
		StartedAt: r.started,
		Duration:  time.Since(r.started),
		Success:   err == nil,
		Err:       err,
		Fields:    r.fields,
	})
}

type slogUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs every event as one logfmt line on w, at Info
// for successes and Warn for failures. A nil w disables logging. The TUI
// owns the terminal, so w is normally a log file.
func NewLogUseCaseObserver(w io.Writer, level slog.Level) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogUseCaseObserver{logger: slog.New(h).With("component", "service")}
}

func (o *slogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
	}
	for k, v := range event.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		o.logger.LogAttrs(ctx, slog.LevelWarn, "use case failed", attrs...)
		return
	}
	o.logger.LogAttrs(ctx, slog.LevelInfo, "use case finished", attrs...)
}

package cli

import (
	"time"

	"github.com/alexanderramin/mindmate/internal/seed"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App
	Nav Navigator

	// Terminal dimensions
	Width  int
	Height int

	// revealSeq numbers dashboard mounts so stale reveal ticks can be told apart.
	revealSeq int
}

// Now returns the app clock's current time.
func (s *SharedState) Now() time.Time {
	return s.App.now()
}

// Catalog loads a fresh copy of the mock data for a view being mounted.
func (s *SharedState) Catalog() (*seed.Catalog, error) {
	return s.App.catalog()
}

// nextRevealID returns a new dashboard mount number.
func (s *SharedState) nextRevealID() int {
	s.revealSeq++
	return s.revealSeq
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

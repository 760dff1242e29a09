package app

import (
	"context"

	"github.com/alexanderramin/mindmate/internal/domain"
)

// SessionStore is the local storage capability behind sign-out.
type SessionStore interface {
	ClearSession(ctx context.Context) error
}

// ProfileStore persists profile form submissions.
type ProfileStore interface {
	SaveProfile(ctx context.Context, p domain.Profile) error
	LastSaved(ctx context.Context) (*domain.Profile, error)
}

package service

import (
	"context"

	"github.com/alexanderramin/mindmate/internal/domain"
)

// SessionService owns the local session: signing out wipes the local store.
type SessionService interface {
	ClearSession(ctx context.Context) error
}

// ProfileService receives profile form submissions.
type ProfileService interface {
	SaveProfile(ctx context.Context, p domain.Profile) error
	LastSaved(ctx context.Context) (*domain.Profile, error)
}

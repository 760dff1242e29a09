package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/alexanderramin/mindmate/internal/repository"
)

// profileKey is the local store key holding the last saved profile.
const profileKey = "profile"

type profileService struct {
	store    repository.LocalStoreRepo
	observer UseCaseObserver
}

func NewProfileService(store repository.LocalStoreRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{store: store, observer: combineObservers(observers)}
}

// storedProfile is the JSON shape written to the local store.
type storedProfile struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Age         string   `json:"age"`
	PrimaryGoal string   `json:"primaryGoal"`
	Interests   []string `json:"interests"`
	DailyFocus  string   `json:"dailyFocus"`
	Notes       string   `json:"notes"`
}

func (s *profileService) SaveProfile(ctx context.Context, p domain.Profile) (err error) {
	run := startUseCase(s.observer, "save-profile")
	run.set("interests", len(p.Interests))
	defer func() { run.finish(ctx, err) }()

	data, err := json.Marshal(storedProfile{
		Name:        p.Name,
		Email:       p.Email,
		Age:         p.Age,
		PrimaryGoal: string(p.PrimaryGoal),
		Interests:   p.Interests,
		DailyFocus:  p.DailyFocus,
		Notes:       p.Notes,
	})
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return s.store.Set(ctx, profileKey, string(data))
}

// LastSaved returns the most recently saved profile, or an error wrapping
// repository.ErrNotFound when nothing has been saved since the last sign-out.
func (s *profileService) LastSaved(ctx context.Context) (*domain.Profile, error) {
	raw, err := s.store.Get(ctx, profileKey)
	if err != nil {
		return nil, err
	}
	var sp storedProfile
	if err := json.Unmarshal([]byte(raw), &sp); err != nil {
		return nil, fmt.Errorf("decoding saved profile: %w", err)
	}
	return &domain.Profile{
		Name:        sp.Name,
		Email:       sp.Email,
		Age:         sp.Age,
		PrimaryGoal: domain.PrimaryGoal(sp.PrimaryGoal),
		Interests:   sp.Interests,
		DailyFocus:  sp.DailyFocus,
		Notes:       sp.Notes,
	}, nil
}

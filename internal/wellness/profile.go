package wellness

import (
	"context"

	"github.com/alexanderramin/mindmate/internal/domain"
)

// ProfileSink receives a profile when the user saves the form.
type ProfileSink interface {
	SaveProfile(ctx context.Context, p domain.Profile) error
}

// ProfileEditor binds the profile form. Every setter swaps in a new record
// rather than mutating the one previously handed out.
type ProfileEditor struct {
	profile domain.Profile
	sink    ProfileSink
}

func NewProfileEditor(p domain.Profile, sink ProfileSink) *ProfileEditor {
	return &ProfileEditor{profile: p.Clone(), sink: sink}
}

// Profile returns a copy of the current record.
func (e *ProfileEditor) Profile() domain.Profile {
	return e.profile.Clone()
}

func (e *ProfileEditor) SetName(s string)  { e.update(func(p *domain.Profile) { p.Name = s }) }
func (e *ProfileEditor) SetEmail(s string) { e.update(func(p *domain.Profile) { p.Email = s }) }
func (e *ProfileEditor) SetAge(s string)   { e.update(func(p *domain.Profile) { p.Age = s }) }
func (e *ProfileEditor) SetDailyFocus(s string) {
	e.update(func(p *domain.Profile) { p.DailyFocus = s })
}
func (e *ProfileEditor) SetNotes(s string) { e.update(func(p *domain.Profile) { p.Notes = s }) }

func (e *ProfileEditor) SetPrimaryGoal(g domain.PrimaryGoal) {
	e.update(func(p *domain.Profile) { p.PrimaryGoal = g })
}

// ToggleInterest removes tag if present, otherwise appends it.
func (e *ProfileEditor) ToggleInterest(tag string) {
	e.profile = e.profile.WithInterestToggled(tag)
}

// Save hands the current record to the sink. Without a sink it is a no-op.
func (e *ProfileEditor) Save(ctx context.Context) error {
	if e.sink == nil {
		return nil
	}
	return e.sink.SaveProfile(ctx, e.Profile())
}

func (e *ProfileEditor) update(fn func(p *domain.Profile)) {
	next := e.profile.Clone()
	fn(&next)
	e.profile = next
}

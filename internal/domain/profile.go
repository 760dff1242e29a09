package domain

import "slices"

type Profile struct {
	Name        string
	Email       string
	Age         string // kept as entered; not validated
	PrimaryGoal PrimaryGoal
	Interests   []string // ordered set, no duplicates
	DailyFocus  string
	Notes       string
}

// Clone returns a copy that shares no slice storage with p.
func (p Profile) Clone() Profile {
	p.Interests = slices.Clone(p.Interests)
	return p
}

// HasInterest reports whether tag is in the interest set.
func (p Profile) HasInterest(tag string) bool {
	return slices.Contains(p.Interests, tag)
}

// WithInterestToggled returns a copy with tag removed if present, appended otherwise.
func (p Profile) WithInterestToggled(tag string) Profile {
	out := p.Clone()
	if i := slices.Index(out.Interests, tag); i >= 0 {
		out.Interests = slices.Delete(out.Interests, i, i+1)
		return out
	}
	out.Interests = append(out.Interests, tag)
	return out
}

// FirstName returns the first word of Name, or Name itself.
func (p Profile) FirstName() string {
	for i, r := range p.Name {
		if r == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}

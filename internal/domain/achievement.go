package domain

type Achievement struct {
	ID          string
	Title       string
	Description string
	Progress    int
	Total       int
	Unlocked    bool
	Category    string
	Points      int
}

// Fraction returns progress/total in [0, 1].
func (a *Achievement) Fraction() float64 {
	if a.Total <= 0 {
		return 0
	}
	f := float64(a.Progress) / float64(a.Total)
	if f > 1 {
		return 1
	}
	return f
}

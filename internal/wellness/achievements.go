package wellness

import (
	"slices"

	"github.com/alexanderramin/mindmate/internal/domain"
)

// AchievementPanel is a read-only projection of the seeded achievements.
type AchievementPanel struct {
	achievements []domain.Achievement
}

func NewAchievementPanel(achievements []domain.Achievement) *AchievementPanel {
	return &AchievementPanel{achievements: slices.Clone(achievements)}
}

func (p *AchievementPanel) All() []domain.Achievement {
	return slices.Clone(p.achievements)
}

// UnlockedCount counts achievements already unlocked.
func (p *AchievementPanel) UnlockedCount() int {
	n := 0
	for _, a := range p.achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// TotalPoints sums the points of unlocked achievements only.
func (p *AchievementPanel) TotalPoints() int {
	sum := 0
	for _, a := range p.achievements {
		if a.Unlocked {
			sum += a.Points
		}
	}
	return sum
}

// LockedProgress returns the progress fraction shown under a locked
// achievement; ok is false for unlocked ones, which show no bar.
func LockedProgress(a domain.Achievement) (fraction float64, ok bool) {
	if a.Unlocked {
		return 0, false
	}
	return a.Fraction(), true
}

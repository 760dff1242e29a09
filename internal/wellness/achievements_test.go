package wellness

import (
	"testing"

	"github.com/alexanderramin/mindmate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAchievementPanel_SeedTotals(t *testing.T) {
	p := NewAchievementPanel(testCatalog(t).Achievements)

	assert.Len(t, p.All(), 6)
	assert.Equal(t, 2, p.UnlockedCount())
	assert.Equal(t, 60, p.TotalPoints())
}

func TestAchievementPanel_Empty(t *testing.T) {
	p := NewAchievementPanel(nil)
	assert.Zero(t, p.UnlockedCount())
	assert.Zero(t, p.TotalPoints())
}

func TestLockedProgress(t *testing.T) {
	tests := []struct {
		name     string
		a        domain.Achievement
		wantFrac float64
		wantOK   bool
	}{
		{"unlocked shows no bar", domain.Achievement{Progress: 7, Total: 7, Unlocked: true}, 0, false},
		{"partial", domain.Achievement{Progress: 12, Total: 30}, 0.4, true},
		{"zero total", domain.Achievement{Progress: 3, Total: 0}, 0, true},
		{"overshoot clamps", domain.Achievement{Progress: 12, Total: 10}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frac, ok := LockedProgress(tt.a)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantFrac, frac, 1e-9)
		})
	}
}

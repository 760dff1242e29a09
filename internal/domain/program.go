package domain

// CategoryAll is the pseudo-category that disables the programs filter.
const CategoryAll = "All"

type Program struct {
	ID               string
	Title            string
	Description      string
	Duration         string
	Difficulty       Difficulty
	Category         string
	Modules          int
	CompletedModules int
	Rating           float64
	Participants     int
	IsActive         bool
	IsRecommended    bool
}

// CompletionRatio returns completedModules/modules in [0, 1].
func (p *Program) CompletionRatio() float64 {
	if p.Modules <= 0 {
		return 0
	}
	r := float64(p.CompletedModules) / float64(p.Modules)
	if r > 1 {
		return 1
	}
	return r
}

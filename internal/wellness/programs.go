package wellness

import (
	"slices"

	"github.com/alexanderramin/mindmate/internal/domain"
)

// ProgramCatalog is the filterable list of enrollment programs.
type ProgramCatalog struct {
	programs   []domain.Program
	categories []string
	selected   string
}

// NewProgramCatalog seeds the catalog; categories is the filter order
// without the leading "All".
func NewProgramCatalog(programs []domain.Program, categories []string) *ProgramCatalog {
	return &ProgramCatalog{
		programs:   slices.Clone(programs),
		categories: slices.Clone(categories),
		selected:   domain.CategoryAll,
	}
}

// SetCategory changes the filter. "All" shows every program.
func (c *ProgramCatalog) SetCategory(category string) {
	c.selected = category
}

func (c *ProgramCatalog) Category() string { return c.selected }

// Categories returns the filter choices, "All" first.
func (c *ProgramCatalog) Categories() []string {
	return append([]string{domain.CategoryAll}, c.categories...)
}

// Visible returns the programs matching the selected category.
func (c *ProgramCatalog) Visible() []domain.Program {
	if c.selected == domain.CategoryAll {
		return slices.Clone(c.programs)
	}
	var out []domain.Program
	for _, p := range c.programs {
		if p.Category == c.selected {
			out = append(out, p)
		}
	}
	return out
}

// ActiveProgram returns the first program marked active.
func (c *ProgramCatalog) ActiveProgram() (domain.Program, bool) {
	for _, p := range c.programs {
		if p.IsActive {
			return p, true
		}
	}
	return domain.Program{}, false
}

// Recommended returns recommended programs the user is not already in.
func (c *ProgramCatalog) Recommended() []domain.Program {
	var out []domain.Program
	for _, p := range c.programs {
		if p.IsRecommended && !p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

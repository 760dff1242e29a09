package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/alexanderramin/mindmate/internal/wellness"
	"github.com/spf13/cobra"
)

func newProgramsCmd(a *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "programs",
		Short: "Browse programs, optionally filtered by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			catalog := wellness.NewProgramCatalog(c.Programs, c.ProgramCategories)
			if category != "" {
				cats := catalog.Categories()
				idx := slices.IndexFunc(cats, func(s string) bool { return strings.EqualFold(s, category) })
				if idx < 0 {
					return &invalidChoiceError{value: category, choices: cats}
				}
				catalog.SetCategory(cats[idx])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPrograms(catalog, -1))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category to show, e.g. Anxiety or Sleep")

	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mindmate/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSignOutCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "signout",
		Aliases: []string{"sign-out", "logout"},
		Short:   "Clear locally stored data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Sessions != nil {
				if err := a.Sessions.ClearSession(context.Background()); err != nil {
					return fmt.Errorf("signing out: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Signed out.")+" Local data cleared.")
			return nil
		},
	}
}

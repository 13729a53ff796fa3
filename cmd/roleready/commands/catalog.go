package commands

import (
	"github.com/spf13/cobra"

	"github.com/roleready/roleready/cmd/roleready/handlers"
)

// Catalog returns the command that lists templates, suggested skills and
// popular roles.
func Catalog() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List templates, suggested skills and popular roles",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			handlers.Catalog()
		},
	}
}

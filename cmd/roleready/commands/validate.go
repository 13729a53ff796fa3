package commands

import (
	"github.com/spf13/cobra"

	"github.com/roleready/roleready/cmd/roleready/handlers"
)

// Validate returns the command that checks a JSON snapshot against the
// snapshot schema.
func Validate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate an exported JSON snapshot",
		Long: `Validate an exported JSON snapshot against the snapshot schema.

Every schema violation is listed with the path of the offending field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Validate(args[0])
		},
	}
}

package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// NewCmd returns the version command
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of voice2txt",
		Long:  `All software has versions. This is voice2txt's.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

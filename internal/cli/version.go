package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AppVersion is the version of the application, should be set during build time.
var AppVersion = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "dtmf version", AppVersion)
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/clgen/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the clgen version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "clgen %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

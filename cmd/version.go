package cmd

import (
	"fmt"

	"github.com/openmrn/cdi-gen/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cdi-gen version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cdi-gen %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

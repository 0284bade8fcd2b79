package cmd

import (
	"fmt"

	"resiosctl/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the resiosctl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "resiosctl %s\n", version.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"fmt"

	"resiosctl/core"

	"github.com/spf13/cobra"
)

var (
	loginPath   string
	loginSearch string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Session checks against the Cosmos server",
}

var loginStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print where the console would navigate for the configured token",
	Long: `Asks the server about the current session and prints the console path
it leads to: the install wizard, the login or MFA pages (with a redirect
back to --path and --search), or OK.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newRemoteClient()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		result, err := core.ResolveLoginStatus(ctx, client, core.Location{Path: loginPath, Search: loginSearch})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	loginStatusCmd.Flags().StringVar(&loginPath, "path", "/resios-ui/", "current console path")
	loginStatusCmd.Flags().StringVar(&loginSearch, "search", "", "current query string, including the leading ?")
	loginCmd.AddCommand(loginStatusCmd)
	rootCmd.AddCommand(loginCmd)
}

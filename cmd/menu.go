package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"resiosctl/core"
	"resiosctl/models"

	"github.com/spf13/cobra"
)

var (
	menuAdmin bool
	menuPath  string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the console navigation tables",
}

func printMenu(w io.Writer, nodes []models.MenuNode, depth int) {
	for _, n := range nodes {
		indent := strings.Repeat("  ", depth)
		switch n.Type {
		case models.MenuTypeGroup:
			fmt.Fprintf(w, "%s%s\t\t\n", indent, n.Title)
			printMenu(w, n.Children, depth+1)
		default:
			flags := ""
			if n.AdminOnly {
				flags += " admin"
			}
			if n.External {
				flags += " external"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\n", indent, n.Title, n.URL, strings.TrimSpace(flags))
		}
	}
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the navigation menu as a user (or admin with --admin) sees it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tURL\tFLAGS")
		printMenu(w, core.VisibleMenu(menuAdmin), 0)
		return w.Flush()
	},
}

var menuRoutesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the console page routes, or the one matching --path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if menuPath != "" {
			pr, params, ok := core.MatchPageRoute(menuPath)
			if !ok {
				return fmt.Errorf("no console page matches %s", menuPath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (private: %t)\n", pr.Path, pageTarget(pr), pr.Private)
			keys := make([]string, 0, len(params))
			for k := range params {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", k, params[k])
			}
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tPAGE\tPRIVATE")
		for _, pr := range append(core.LoginPageRoutes(), core.MainPageRoutes()...) {
			fmt.Fprintf(w, "%s\t%s\t%t\n", pr.Path, pageTarget(pr), pr.Private)
		}
		return w.Flush()
	},
}

func pageTarget(pr models.PageRoute) string {
	if pr.Redirect != "" {
		return "redirect " + pr.Redirect
	}
	return pr.Page
}

func init() {
	menuListCmd.Flags().BoolVar(&menuAdmin, "admin", false, "include admin-only entries")
	menuRoutesCmd.Flags().StringVar(&menuPath, "path", "", "browser path to match, e.g. /resios-ui/servapps/containers/web")
	menuCmd.AddCommand(menuListCmd, menuRoutesCmd)
	rootCmd.AddCommand(menuCmd)
}

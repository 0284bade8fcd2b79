package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"resiosctl/core"

	"github.com/spf13/cobra"
)

var containerCmd = &cobra.Command{
	Use:   "container",
	Short: "Show what the server configuration binds to a container",
}

var containerRoutesCmd = &cobra.Command{
	Use:   "routes NAME",
	Short: "List the ServApp routes targeting container NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()
		cfg, err := loadServerConfig(ctx, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		routes := core.ContainerRoutes(cfg, args[0])
		if len(routes) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No routes target container %s.\n", args[0])
			return nil
		}
		origin := consoleOrigin("")
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTARGET\tORIGIN")
		for _, r := range routes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Target, core.FullOrigin(r, origin))
		}
		return w.Flush()
	},
}

var containerJobsCmd = &cobra.Command{
	Use:   "jobs NAME",
	Short: "List the cron jobs bound to container NAME with their next run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()
		cfg, err := loadServerConfig(ctx, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		jobs := core.ContainerJobs(cfg, args[0], time.Now())
		if len(jobs) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No cron jobs bound to container %s.\n", args[0])
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSCHEDULE\tENABLED\tNEXT RUN")
		for _, j := range jobs {
			next := "-"
			if j.NextRun != nil {
				next = j.NextRun.Local().Format(time.DateTime)
			}
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", j.Name, j.Crontab, j.Enabled, next)
		}
		return w.Flush()
	},
}

func init() {
	containerCmd.AddCommand(containerRoutesCmd, containerJobsCmd)
	rootCmd.AddCommand(containerCmd)
}

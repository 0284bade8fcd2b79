package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"resiosctl/core"
	"resiosctl/i18n"
	"resiosctl/logger"
	"resiosctl/models"

	"github.com/spf13/cobra"
)

var errRouteInvalid = errors.New("route is invalid")

var (
	routeFile       string
	routeOutput     string
	routesFile      string
	routeEditing    string
	routeLang       string
	routeOrigin     string
	routeListOrigin string
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Sanitize, validate and inspect proxy routes",
}

func printRoute(w io.Writer, route models.Route) error {
	switch routeOutput {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(route)
	case "yaml", "":
		return writeYAML(w, route)
	default:
		return fmt.Errorf("unknown output format %q (yaml, json)", routeOutput)
	}
}

var routeSanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Normalize a route read from --file (or stdin)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		route, err := readRouteFile(routeFile)
		if err != nil {
			return err
		}
		return printRoute(cmd.OutOrStdout(), core.SanitizeRoute(route))
	},
}

var routeValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Sanitize and validate a route against the server's routes",
	Long: `Sanitizes the route read from --file (or stdin) and validates it.
The name collision check uses --routes when given, otherwise the routes
currently configured on the server. Exits with status 1 when invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		route, err := readRouteFile(routeFile)
		if err != nil {
			return err
		}

		var routes models.RouteCollection
		if routesFile != "" {
			if err := readInput(routesFile, &routes); err != nil {
				return err
			}
		} else {
			ctx, cancel := commandContext()
			defer cancel()
			cfg, err := loadServerConfig(ctx, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to load routes from the server: %w", err)
			}
			routes = cfg.Routes()
		}
		if routeEditing != "" {
			routes = routes.Without(routeEditing)
		}

		route = core.SanitizeRoute(route)
		errs := core.ValidateRoute(route, routes, printerFor(routeLang))
		if len(errs) > 0 {
			for _, msg := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "- %s\n", msg)
			}
			logger.Debug("route validate: %q rejected with %d error(s)", route.Name, len(errs))
			return errRouteInvalid
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Route %q is valid.\n", route.Name)
		return nil
	},
}

var routeHostnameCmd = &cobra.Command{
	Use:   "hostname NAME",
	Short: "Suggest a Host for a new route",
	Long: `Suggests a Host for a route called NAME. On a domain origin the name
becomes a subdomain of it; on an IP origin the first free port of the
auto-hostname range is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		origin := consoleOrigin(routeOrigin)
		if origin.Host == "" {
			return errors.New("no console origin: pass --origin or set console.origin")
		}

		var decoration *models.Route
		if routeFile != "" {
			route, err := readRouteFile(routeFile)
			if err != nil {
				return err
			}
			decoration = &route
		}

		var routes models.RouteCollection
		if !core.IsDomain(origin.Hostname()) {
			ctx, cancel := commandContext()
			defer cancel()
			cfg, err := loadServerConfig(ctx, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to load routes from the server: %w", err)
			}
			routes = cfg.Routes()
		}

		host, err := core.HostnameFromName(args[0], decoration, routes, origin)
		if errors.Is(err, core.ErrNoPortsAvailable) {
			return errors.New(printerFor(routeLang).Message(i18n.KeyNoPortsAvailable))
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), host)
		return nil
	},
}

var routeFaviconCmd = &cobra.Command{
	Use:   "favicon",
	Short: "Print the icon URL for the route in --file (default icon without one)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var route *models.Route
		if routeFile != "" {
			r, err := readRouteFile(routeFile)
			if err != nil {
				return err
			}
			route = &r
		}
		fmt.Fprintln(cmd.OutOrStdout(), core.FaviconURL(route, faviconOptions(consoleOrigin(routeOrigin))))
		return nil
	},
}

var routeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the routes configured on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()
		cfg, err := loadServerConfig(ctx, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		routes := cfg.Routes()
		if len(routes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No routes configured.")
			return nil
		}

		origin := consoleOrigin(routeListOrigin)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMODE\tTARGET\tORIGIN\tSHIELD\tDISABLED")
		fmt.Fprintln(w, "----\t----\t------\t------\t------\t--------")
		for _, r := range routes {
			shield := r.SmartShield != nil && r.SmartShield.Enabled
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%t\n", r.Name, r.Mode, r.Target, core.FullOrigin(r, origin), shield, r.Disabled)
		}
		return w.Flush()
	},
}

func init() {
	for _, c := range []*cobra.Command{routeSanitizeCmd, routeValidateCmd, routeHostnameCmd, routeFaviconCmd} {
		c.Flags().StringVarP(&routeFile, "file", "f", "", "route file (YAML or JSON, - for stdin)")
	}
	routeSanitizeCmd.Flags().StringVarP(&routeOutput, "output", "o", "yaml", "output format: yaml, json")

	routeValidateCmd.Flags().StringVar(&routesFile, "routes", "", "route collection file used for the name check instead of the server's")
	routeValidateCmd.Flags().StringVar(&routeEditing, "editing", "", "name of the route being edited (excluded from the name check)")
	for _, c := range []*cobra.Command{routeValidateCmd, routeHostnameCmd} {
		c.Flags().StringVar(&routeLang, "lang", "", "message language (en, de); default is the stored locale")
	}

	routeHostnameCmd.Flags().StringVar(&routeOrigin, "origin", "", "console origin (default console.origin, then remote.url)")
	routeFaviconCmd.Flags().StringVar(&routeOrigin, "origin", "", "console origin (default console.origin, then remote.url)")
	routeListCmd.Flags().StringVar(&routeListOrigin, "origin", "", "console origin (default console.origin, then remote.url)")

	routeCmd.AddCommand(routeSanitizeCmd, routeValidateCmd, routeHostnameCmd, routeFaviconCmd, routeListCmd)
	rootCmd.AddCommand(routeCmd)
}

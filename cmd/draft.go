package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"resiosctl/core"
	"resiosctl/database"
	"resiosctl/models"

	"github.com/spf13/cobra"
)

var (
	draftFile    string
	draftRoutes  string
	draftEditing string
	draftLang    string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Keep sanitized routes locally until they are submitted",
}

var draftAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store the route from --file (or stdin) as a draft",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		route, err := readRouteFile(draftFile)
		if err != nil {
			return err
		}
		draft, err := database.CreateDraft(core.SanitizeRoute(route))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Draft %s saved for route %q.\n", draft.ID, draft.Route.Name)
		return nil
	},
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored drafts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		drafts, err := database.ListDrafts()
		if err != nil {
			return err
		}
		if len(drafts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No drafts stored.")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMODE\tTARGET\tUPDATED")
		fmt.Fprintln(w, "--\t----\t----\t------\t-------")
		for _, d := range drafts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Route.Name, d.Route.Mode, d.Route.Target, d.UpdatedAt.Local().Format(time.DateTime))
		}
		return w.Flush()
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a draft's route as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := database.GetDraft(args[0])
		if err != nil {
			return err
		}
		return writeYAML(cmd.OutOrStdout(), draft.Route)
	},
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.DeleteDraft(args[0]); err != nil {
			if errors.Is(err, database.ErrDraftNotFound) {
				return fmt.Errorf("draft %s not found", args[0])
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Draft %s deleted.\n", args[0])
		return nil
	},
}

var draftValidateCmd = &cobra.Command{
	Use:   "validate ID",
	Short: "Validate a draft against the server's routes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := database.GetDraft(args[0])
		if err != nil {
			return err
		}

		var routes models.RouteCollection
		if draftRoutes != "" {
			if err := readInput(draftRoutes, &routes); err != nil {
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
		if draftEditing != "" {
			routes = routes.Without(draftEditing)
		}

		errs := core.ValidateRoute(draft.Route, routes, printerFor(draftLang))
		if len(errs) > 0 {
			for _, msg := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "- %s\n", msg)
			}
			return errRouteInvalid
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Draft %s (%q) is valid.\n", draft.ID, draft.Route.Name)
		return nil
	},
}

func init() {
	draftAddCmd.Flags().StringVarP(&draftFile, "file", "f", "", "route file (YAML or JSON, - for stdin)")
	draftValidateCmd.Flags().StringVar(&draftRoutes, "routes", "", "route collection file used for the name check instead of the server's")
	draftValidateCmd.Flags().StringVar(&draftEditing, "editing", "", "name of the route being edited (excluded from the name check)")
	draftValidateCmd.Flags().StringVar(&draftLang, "lang", "", "message language (en, de); default is the stored locale")

	draftCmd.AddCommand(draftAddCmd, draftListCmd, draftShowCmd, draftDeleteCmd, draftValidateCmd)
	rootCmd.AddCommand(draftCmd)
}

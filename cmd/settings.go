package cmd

import (
	"fmt"
	"strings"

	"resiosctl/database"
	"resiosctl/i18n"
	"resiosctl/models"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Local console settings",
}

var localeCmd = &cobra.Command{
	Use:   "locale [LOCALE]",
	Short: "Show or set the language of validation messages",
	Long: `Without an argument, prints the locale in use and the supported ones.
With LOCALE, stores the closest supported language; "" resets to
console.locale.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			value := ""
			if args[0] != "" {
				value = i18n.NewPrinter(args[0]).Language()
			}
			if err := database.SetSetting(models.LocaleKey, value); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Locale: %s (supported: %s)\n", printerFor("").Language(), strings.Join(i18n.Supported(), ", "))
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(localeCmd)
	rootCmd.AddCommand(settingsCmd)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resiosctl/config"
	"resiosctl/database"
	"resiosctl/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile           string
	dbPath            string // Bound to --dbpath flag
	appLogPathFlag    string
	remoteLogPathFlag string
	logLevelFlag      string
)

func expandTildeCmd(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// resolveDBPath picks the database path from the flag, then the config.
func resolveDBPath() string {
	finalDBPath := dbPath
	source := "--dbpath flag"
	if finalDBPath == "" {
		finalDBPath = config.AppConfig.Database.Path
		source = "config"
	}
	expandedPath, err := expandTildeCmd(finalDBPath)
	if err != nil {
		logger.Error("Error expanding tilde in %s database path '%s': %v. Using original.", source, finalDBPath, err)
	} else {
		finalDBPath = expandedPath
	}
	if finalDBPath == "" {
		logger.Error("PersistentPreRunE: Database path is empty after checking flag and config! Falling back to 'resiosctl.db' in CWD.")
		finalDBPath = "resiosctl.db"
	}
	logger.Debug("PersistentPreRunE: Using database path from %s: '%s'", source, finalDBPath)
	return finalDBPath
}

var rootCmd = &cobra.Command{
	Use:   "resiosctl",
	Short: "Console companion for a Cosmos/resiOS server",
	Long: `resiosctl carries the console-side logic of a Cosmos/resiOS server:
route sanitization and validation, hostname suggestions, favicon URLs,
login-status resolution and the navigation tables.

It talks to the server only through its HTTP API and can serve the same
operations over a local JSON API ("resiosctl server").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(cfgFile, appLogPathFlag, remoteLogPathFlag, logLevelFlag); err != nil {
			return fmt.Errorf("failed to initialize config in PersistentPreRunE: %w", err)
		}

		switch cmd.Name() {
		case "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd, "version":
			return nil
		}

		finalDBPath := resolveDBPath()
		if err := database.InitDB(finalDBPath); err != nil {
			return fmt.Errorf("failed to initialize database at %s: %w", finalDBPath, err)
		}
		if cmd.Name() != "server" {
			logger.Debug("Database initialized at: %s (from rootCmd PersistentPreRunE)", finalDBPath)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := database.CloseDB(); err != nil {
			logger.Error("Error closing database: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/resiosctl/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "dbpath", "", "path to SQLite database file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&appLogPathFlag, "app-log", "", "path for the application log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&remoteLogPathFlag, "remote-log", "", "path for the Cosmos API traffic log file (overrides config/default)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR (overrides config/default)")
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"resiosctl/config"
	"resiosctl/core"
	"resiosctl/database"
	"resiosctl/i18n"
	"resiosctl/logger"
	"resiosctl/models"
	"resiosctl/remote"

	"gopkg.in/yaml.v3"
)

// newRemoteClient builds the Cosmos API client from the loaded configuration.
func newRemoteClient() (*remote.Client, error) {
	if config.AppConfig.Remote.URL == "" {
		return nil, remote.ErrNoRemote
	}
	return remote.New(config.AppConfig.Remote.URL, config.AppConfig.Remote.Token, config.AppConfig.Remote.Timeout)
}

// loadServerConfig fetches the server configuration, falling back to the
// last stored snapshot when the server is unreachable.
func loadServerConfig(ctx context.Context, stderr io.Writer) (*models.Config, error) {
	client, err := newRemoteClient()
	if err != nil {
		return nil, err
	}
	cfg, source, err := remote.LoadConfig(ctx, client)
	if err != nil {
		return nil, err
	}
	if source == remote.SourceSnapshot {
		fmt.Fprintln(stderr, "Warning: server unreachable, using the last stored configuration snapshot.")
	}
	return cfg, nil
}

func commandContext() (context.Context, context.CancelFunc) {
	timeout := config.AppConfig.Remote.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), 2*timeout)
}

// readInput decodes a YAML (or JSON) document from path, "-" meaning stdin.
func readInput(path string, dst interface{}) error {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputName(path), err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", inputName(path), err)
	}
	return nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func readRouteFile(path string) (models.Route, error) {
	var route models.Route
	err := readInput(path, &route)
	return route, err
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// printerFor resolves the message language: the flag, then the stored
// locale, then console.locale.
func printerFor(lang string) *i18n.Printer {
	if lang != "" {
		return i18n.NewPrinter(lang)
	}
	if database.DB != nil {
		stored, err := database.GetSetting(models.LocaleKey)
		if err != nil {
			logger.Debug("printerFor: no stored locale: %v", err)
		} else if stored != "" {
			return i18n.NewPrinter(stored)
		}
	}
	return i18n.NewPrinter(config.AppConfig.Console.Locale)
}

func consoleOrigin(override string) core.Origin {
	if override != "" {
		return core.ParseOrigin(override)
	}
	return core.ParseOrigin(config.ConsoleOrigin())
}

func faviconOptions(origin core.Origin) core.FaviconOptions {
	return core.FaviconOptions{
		Demo:      config.AppConfig.Console.Demo,
		DemoIcons: config.AppConfig.Console.DemoIcons,
		Console:   origin,
	}
}

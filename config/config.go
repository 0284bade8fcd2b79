package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resiosctl/logger"

	"github.com/spf13/viper"
)

type DefaultPaths struct {
	ConfigDir     string
	LogPathApp    string
	LogPathRemote string
	DBPath        string
	LogLevel      string
}

type Configuration struct {
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Server struct {
		Port        string   `mapstructure:"port"`
		LogPath     string   `mapstructure:"log_path"`
		CORSOrigins []string `mapstructure:"cors_origins"`
	} `mapstructure:"server"`
	Remote struct {
		URL     string        `mapstructure:"url"`
		Token   string        `mapstructure:"token"`
		Timeout time.Duration `mapstructure:"timeout"`
		LogPath string        `mapstructure:"log_path"`
	} `mapstructure:"remote"`
	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
	Console struct {
		// Origin is the URL the console is served from; it drives favicon
		// origins and generated hostnames.
		Origin      string            `mapstructure:"origin"`
		Demo        bool              `mapstructure:"demo"`
		Locale      string            `mapstructure:"locale"`
		DNSDebounce time.Duration     `mapstructure:"dns_debounce"`
		DemoIcons   map[string]string `mapstructure:"demo_icons"`
	} `mapstructure:"console"`
}

var AppConfig Configuration

func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func GetDefaultConfigPaths() DefaultPaths {
	var paths DefaultPaths
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not get user config dir: %v. Using current directory.\n", err)
		userConfigDir = "."
	}

	paths.ConfigDir = filepath.Join(userConfigDir, "resiosctl")
	logDir := filepath.Join(paths.ConfigDir, "logs")

	paths.LogPathApp = filepath.Join(logDir, "app.log")
	paths.LogPathRemote = filepath.Join(logDir, "remote.log")
	paths.DBPath = filepath.Join(paths.ConfigDir, "resiosctl.db")
	paths.LogLevel = "INFO"
	return paths
}

func setDefaults(v *viper.Viper, defaults DefaultPaths) {
	v.SetDefault("database.path", defaults.DBPath)
	v.SetDefault("server.port", "8779")
	v.SetDefault("server.log_path", defaults.LogPathApp)
	v.SetDefault("server.cors_origins", []string{"http://localhost:*", "http://127.0.0.1:*"})
	v.SetDefault("remote.url", "")
	v.SetDefault("remote.token", "")
	v.SetDefault("remote.timeout", "10s")
	v.SetDefault("remote.log_path", defaults.LogPathRemote)
	v.SetDefault("logging.level", defaults.LogLevel)
	v.SetDefault("console.origin", "")
	v.SetDefault("console.demo", false)
	v.SetDefault("console.locale", "en")
	v.SetDefault("console.dns_debounce", "500ms")
	v.SetDefault("console.demo_icons", map[string]string{})
}

func Init(cfgFile string, flagAppLogPath, flagRemoteLogPath, flagLogLevel string) error {
	v := viper.New()

	defaults := GetDefaultConfigPaths()
	setDefaults(v, defaults)

	if cfgFile != "" {
		expandedCfgFile, err := expandTilde(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in config file path '%s': %v. Trying original path.\n", cfgFile, err)
			expandedCfgFile = cfgFile
		}
		v.SetConfigFile(expandedCfgFile)
		v.SetConfigType("yaml")
	} else {
		v.AddConfigPath(defaults.ConfigDir)
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("RESIOSCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	configUsedMsg := "Using default/environment configuration."
	readErr := v.ReadInConfig()
	if readErr == nil {
		configUsedMsg = fmt.Sprintf("Using config file: %s", v.ConfigFileUsed())
	} else {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				fmt.Fprintf(os.Stderr, "Warning: Config file specified by flag (%s) not found: %v\n", cfgFile, readErr)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", v.ConfigFileUsed(), readErr)
		}
	}

	AppConfig = Configuration{}
	if err := v.Unmarshal(&AppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Error unmarshalling configuration: %v\n", err)
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Apply flag overrides
	if flagAppLogPath != "" {
		AppConfig.Server.LogPath = flagAppLogPath
	}
	if flagRemoteLogPath != "" {
		AppConfig.Remote.LogPath = flagRemoteLogPath
	}
	if flagLogLevel != "" {
		AppConfig.Logging.Level = strings.ToUpper(flagLogLevel)
	}

	for _, p := range []*string{&AppConfig.Database.Path, &AppConfig.Server.LogPath, &AppConfig.Remote.LogPath} {
		expanded, err := expandTilde(*p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in '%s': %v.\n", *p, err)
			continue
		}
		*p = expanded
	}
	AppConfig.Remote.URL = strings.TrimRight(AppConfig.Remote.URL, "/")

	if err := logger.InitGlobalLoggers(AppConfig.Server.LogPath, AppConfig.Remote.LogPath, AppConfig.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to initialize global loggers with final config: %v\n", err)
		return fmt.Errorf("failed to initialize global loggers with final config: %w", err)
	}

	logger.Info(configUsedMsg)
	if readErr != nil && cfgFile != "" {
		logger.Error("Error occurred reading specified config file '%s': %v", cfgFile, readErr)
	}
	if flagAppLogPath != "" || flagRemoteLogPath != "" || flagLogLevel != "" {
		logger.Info("Log path/level flags may have overridden config file/defaults.")
	}

	if AppConfig.Remote.URL == "" {
		logger.Warn("remote.url is not configured. Commands that talk to the Cosmos server will fail.")
	} else {
		logger.Info("Cosmos server: %s", AppConfig.Remote.URL)
	}
	if AppConfig.Console.Demo {
		logger.Info("Console demo mode ENABLED: favicons come from the bundled icon table.")
	}

	logger.Debug("Final AppConfig Initialized: database=%s port=%s remote=%s locale=%s origin=%s",
		AppConfig.Database.Path, AppConfig.Server.Port, AppConfig.Remote.URL, AppConfig.Console.Locale, AppConfig.Console.Origin)
	return nil
}

// ConsoleOrigin returns the configured console origin, falling back to the
// remote server URL.
func ConsoleOrigin() string {
	if AppConfig.Console.Origin != "" {
		return AppConfig.Console.Origin
	}
	return AppConfig.Remote.URL
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	DefaultDocumentPath = "data/E-Uni Tools.html"
	DefaultOfficersPath = "config/officers.txt"
	DefaultActionsPath  = "config/actions.txt"
	DefaultReportsDir   = "reports"
	DefaultLogLevel     = "info"

	envPrefix      = "UNISTATS"
	configName     = "unistats"
	dotEnvFilename = ".env"
)

// Config holds the file locations used for a single report run
type Config struct {
	DocumentPath string `mapstructure:"document"`
	OfficersPath string `mapstructure:"officers"`
	ActionsPath  string `mapstructure:"actions"`
	ReportsDir   string `mapstructure:"reports_dir"`
	LogLevel     string `mapstructure:"log_level"`
}

// Default returns the configuration the tool runs with when nothing overrides it
func Default() *Config {
	return &Config{
		DocumentPath: DefaultDocumentPath,
		OfficersPath: DefaultOfficersPath,
		ActionsPath:  DefaultActionsPath,
		ReportsDir:   DefaultReportsDir,
		LogLevel:     DefaultLogLevel,
	}
}

// Build layers the configuration: defaults, then the optional config file,
// then UNISTATS_* environment variables (a .env file is loaded first), then
// any flags that were explicitly set.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := gotenv.Load(dotEnvFilename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotEnvFilename, err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault("document", def.DocumentPath)
	v.SetDefault("officers", def.OfficersPath)
	v.SetDefault("actions", def.ActionsPath)
	v.SetDefault("reports_dir", def.ReportsDir)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// flagKeys maps config keys to the CLI flags that override them
var flagKeys = map[string]string{
	"document":    "document",
	"officers":    "officers",
	"actions":     "actions",
	"reports_dir": "reports-dir",
	"log_level":   "log-level",
}

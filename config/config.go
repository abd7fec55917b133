package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"simpleui/apperr"
)

// DefaultAppID is the reverse-domain identifier the toolkit registers the
// application under.
const DefaultAppID = "com.example.simpleui"

// Config holds all configuration for the demo programs.
type Config struct {
	AppID string `mapstructure:"app_id"`
	// Definitions is a directory holding <window>.yaml overrides.
	Definitions string        `mapstructure:"definitions"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads simpleui.yaml (optional) and SIMPLEUI_* environment variables.
// SIMPLEUI_CONFIG points at an explicit config file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("simpleui")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "simpleui"))
	}

	setDefaults(v)

	v.SetEnvPrefix("SIMPLEUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("SIMPLEUI_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		// Running without a config file is the normal case.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperr.Wrap(apperr.Configuration, "read config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperr.Wrap(apperr.Configuration, "unmarshal config", err)
	}
	if cfg.AppID == "" {
		cfg.AppID = DefaultAppID
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_id", DefaultAppID)
	v.SetDefault("definitions", "")
	v.SetDefault("logging.level", "info")
}

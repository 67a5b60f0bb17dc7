// Package config loads service configuration and initializes logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Registry  RegistryConfig  `yaml:"registry" mapstructure:"registry"`
	Tracker   TrackerConfig   `yaml:"tracker" mapstructure:"tracker"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Reconcile ReconcileConfig `yaml:"reconcile" mapstructure:"reconcile"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// RegistryConfig configures the lead-recycling registry database.
type RegistryConfig struct {
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// TrackerConfig configures the scrape-job tracker database.
type TrackerConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// DashboardConfig configures the scraper dashboard API client.
type DashboardConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	APIKey      string `yaml:"api_key" mapstructure:"api_key"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ReconcileConfig configures run behavior.
type ReconcileConfig struct {
	SubmitPauseSecs int `yaml:"submit_pause_secs" mapstructure:"submit_pause_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. Both store connection
// strings are required; their absence fails here, before any store is
// touched.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RECYCLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. The empty-string entries register env-only keys so
	// AutomaticEnv picks them up during Unmarshal.
	v.SetDefault("registry.database_url", "")
	v.SetDefault("tracker.driver", "postgres")
	v.SetDefault("tracker.database_url", "")
	v.SetDefault("dashboard.api_key", "")
	v.SetDefault("dashboard.base_url", "http://localhost:3000")
	v.SetDefault("dashboard.timeout_secs", 30)
	v.SetDefault("reconcile.submit_pause_secs", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if cfg.Registry.DatabaseURL == "" {
		return nil, eris.New("config: registry.database_url is required")
	}
	if cfg.Tracker.DatabaseURL == "" {
		return nil, eris.New("config: tracker.database_url is required")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

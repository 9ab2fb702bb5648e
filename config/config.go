// Package config loads managers-go settings through viper.
// Defaults reproduce the behaviour of the catalog as written: a shared
// attempt counter, one failing attempt, and permanent Manager4 failure.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete managers-go configuration
type Config struct {
	Logger   Logger         `mapstructure:"logger"`
	Factory  FactoryConfig  `mapstructure:"factory"`
	Manager4 Manager4Config `mapstructure:"manager4"`
}

// Logger holds the logging configuration
type Logger struct {
	// Enabled turns logging on; when false a no-op logger is used
	Enabled bool `mapstructure:"enabled"`
	// Environment selects the zap preset: "production" or "development"
	Environment string `mapstructure:"environment"`
	// Level is one of "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
}

// FactoryConfig controls the resource factory behind Manager3 and Manager4
type FactoryConfig struct {
	// ReadyAfter is how many leading attempts return no resource (default: 1)
	ReadyAfter int64 `mapstructure:"ready_after"`
	// ResourceValue is the payload of created resources (default: 43)
	ResourceValue int `mapstructure:"resource_value"`
	// Counter is "shared" (one attempt counter for Manager3 and Manager4)
	// or "independent" (one counter each)
	Counter string `mapstructure:"counter"`
}

// Manager4Config controls Manager4's construction-failure handling
type Manager4Config struct {
	// FailurePolicy is "permanent" (a failed construction is final)
	// or "retry" (the next Instance() call constructs again)
	FailurePolicy string `mapstructure:"failure_policy"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Logger: Logger{
			Enabled:     false,
			Environment: "production",
			Level:       "info",
		},
		Factory: FactoryConfig{
			ReadyAfter:    1,
			ResourceValue: 43,
			Counter:       CounterShared,
		},
		Manager4: Manager4Config{
			FailurePolicy: FailurePolicyPermanent,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("logger.enabled", defaults.Logger.Enabled)
	viper.SetDefault("logger.environment", defaults.Logger.Environment)
	viper.SetDefault("logger.level", defaults.Logger.Level)

	viper.SetDefault("factory.ready_after", defaults.Factory.ReadyAfter)
	viper.SetDefault("factory.resource_value", defaults.Factory.ResourceValue)
	viper.SetDefault("factory.counter", defaults.Factory.Counter)

	viper.SetDefault("manager4.failure_policy", defaults.Manager4.FailurePolicy)
}

// Load reads the configuration from viper and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "managers")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "managers")
}

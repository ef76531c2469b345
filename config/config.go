package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and NETATMO_* environment
// variables. A missing config file is not an error as long as the
// environment provides credentials; the original tooling is often run with
// environment variables only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Credentials may come from the environment instead of the file
	v.BindEnv("netatmo.client_id", "NETATMO_CLIENT_ID")
	v.BindEnv("netatmo.client_secret", "NETATMO_CLIENT_SECRET")
	v.BindEnv("netatmo.refresh_token", "NETATMO_REFRESH_TOKEN")
	v.BindEnv("netatmo.access_token", "NETATMO_ACCESS_TOKEN")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".netatmo-cli"))
		}

		// Check /etc
		v.AddConfigPath("/etc/netatmo-cli/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.show_details", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	n := cfg.Netatmo
	if n.AccessToken == "" {
		if n.ClientID == "" || n.ClientSecret == "" || n.RefreshToken == "" {
			return fmt.Errorf("netatmo credentials are incomplete: set netatmo.client_id, netatmo.client_secret and netatmo.refresh_token (or netatmo.access_token)")
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

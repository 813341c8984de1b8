package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. The config file
// is optional; the API key alone (STEAMAPIS_API_KEY or steamapis.api_key)
// is enough to run.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load(".env") // init env from .env (if found)

	v := viper.New()

	// Set default values
	setDefaults(v)

	// The API key may come from the environment instead of the file
	v.MustBindEnv("steamapis.api_key", "STEAMAPIS_API_KEY")

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
			v.AddConfigPath(filepath.Join(home, ".steamapi"))
		}

		// Check /etc
		v.AddConfigPath("/etc/steamapi/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Only fatal when a file was asked for explicitly
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %w", err)
			}
		} else {
			return nil, fmt.Errorf("error reading config: %w", err)
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
	// SteamAPIs defaults
	v.SetDefault("steamapis.base_url", "https://api.steamapis.com")
	v.SetDefault("steamapis.timeout", "30s")

	// Check runner defaults, well-known public test fixtures
	v.SetDefault("check.steam_id", "76561197993496553")
	v.SetDefault("check.app_id", 730)
	v.SetDefault("check.item_name", "AK-47 | Redline (Field-Tested)")
	v.SetDefault("check.inspect_link", "steam://rungame/730/76561202255233023/+csgo_econ_action_preview%20S76561198084749846A12345678910D12345678987654321")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.SteamAPIs.APIKey == "" || cfg.SteamAPIs.APIKey == "your-api-key-here" {
		return fmt.Errorf("steamapis.api_key must be set to a valid API key (or export STEAMAPIS_API_KEY)")
	}

	if cfg.SteamAPIs.BaseURL == "" {
		return fmt.Errorf("steamapis.base_url is required")
	}

	if cfg.SteamAPIs.Timeout <= 0 {
		return fmt.Errorf("steamapis.timeout must be positive")
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

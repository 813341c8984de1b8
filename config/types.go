package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	SteamAPIs SteamAPIsConfig `mapstructure:"steamapis"`
	Check     CheckConfig     `mapstructure:"check"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// SteamAPIsConfig holds SteamAPIs connection details
type SteamAPIsConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CheckConfig holds the fixtures used by the endpoint check runner
type CheckConfig struct {
	SteamID     string `mapstructure:"steam_id"`
	AppID       int64  `mapstructure:"app_id"`
	ItemName    string `mapstructure:"item_name"`
	InspectLink string `mapstructure:"inspect_link"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

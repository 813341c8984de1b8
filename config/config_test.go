package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		SteamAPIs: SteamAPIsConfig{
			APIKey:  "valid-api-key",
			BaseURL: "https://api.steamapis.com",
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing api key",
			mutate:  func(cfg *Config) { cfg.SteamAPIs.APIKey = "" },
			wantErr: "steamapis.api_key",
		},
		{
			name:    "placeholder api key",
			mutate:  func(cfg *Config) { cfg.SteamAPIs.APIKey = "your-api-key-here" },
			wantErr: "steamapis.api_key",
		},
		{
			name:    "missing base url",
			mutate:  func(cfg *Config) { cfg.SteamAPIs.BaseURL = "" },
			wantErr: "steamapis.base_url",
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *Config) { cfg.SteamAPIs.Timeout = 0 },
			wantErr: "steamapis.timeout",
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("STEAMAPIS_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `steamapis:
  api_key: file-key
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SteamAPIs.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want %q", cfg.SteamAPIs.APIKey, "file-key")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}

	// Defaults fill everything the file leaves out.
	if cfg.SteamAPIs.BaseURL != "https://api.steamapis.com" {
		t.Errorf("BaseURL = %q, want default", cfg.SteamAPIs.BaseURL)
	}
	if cfg.SteamAPIs.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.SteamAPIs.Timeout)
	}
	if cfg.Check.AppID != 730 {
		t.Errorf("Check.AppID = %d, want 730", cfg.Check.AppID)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want default console", cfg.Logging.Format)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STEAMAPIS_API_KEY", "env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SteamAPIs.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want %q", cfg.SteamAPIs.APIKey, "env-key")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("STEAMAPIS_API_KEY", "env-key")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("STEAMAPIS_API_KEY", "env-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `logging:
  level: loud
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "invalid logging level") {
		t.Fatalf("Load() error = %v, want invalid logging level", err)
	}
}

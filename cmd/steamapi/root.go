package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sat-14/steamapi"
	"github.com/Sat-14/steamapi/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *steamapi.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "steamapi",
	Short: "Query Steam market data through the SteamAPIs service",
	Long: `steamapi is a CLI for the SteamAPIs market data service. It looks up
item prices, sale histories, order books, inventories, and profiles.

An API key is required; set it in config.yaml (steamapis.api_key) or
export STEAMAPIS_API_KEY.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information from build flags
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute runs the root command and releases the client afterwards.
func Execute() {
	err := rootCmd.Execute()
	if client != nil {
		client.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(popularCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(floatCmd)
	rootCmd.AddCommand(appCmd)
	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(inventoryValueCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(checkCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create SteamAPIs client
	client, err = steamapi.New(cfg.SteamAPIs.APIKey,
		steamapi.WithBaseURL(cfg.SteamAPIs.BaseURL),
		steamapi.WithTimeout(cfg.SteamAPIs.Timeout),
		steamapi.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create SteamAPIs client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; drop color when stderr is not a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// parseAppID parses a numeric app id argument
func parseAppID(arg string) (int64, error) {
	appID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid app id %q: %w", arg, err)
	}
	return appID, nil
}

// parseContextID parses an optional context id argument, defaulting to the
// community inventory context
func parseContextID(args []string, index int) (int64, error) {
	if len(args) <= index {
		return 2, nil
	}
	contextID, err := strconv.ParseInt(args[index], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid context id %q: %w", args[index], err)
	}
	return contextID, nil
}

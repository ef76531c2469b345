package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nsenaud/netatmo-go/config"
	"github.com/nsenaud/netatmo-go/netatmo"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *netatmo.AuthenticatedClient

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	deviceID   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "netatmo-cli",
	Short: "Query and control Netatmo weather stations and thermostats",
	Long: `netatmo-cli is a CLI tool for the Netatmo home automation API. It reads
station and home coach telemetry, home topology and status, historical
measurement series, and can change room thermostat setpoints.

Credentials are read from the config file or from the NETATMO_CLIENT_ID,
NETATMO_CLIENT_SECRET and NETATMO_REFRESH_TOKEN environment variables.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build metadata injected by the linker.
func SetVersion(v, t string) {
	version = v
	buildTime = t
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(testCmd)
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

	// Build the API client
	client, err = buildClient(cmd.Context())
	if err != nil {
		return err
	}

	return nil
}

// buildClient authenticates against the Netatmo API, or wraps a configured
// access token directly.
func buildClient(ctx context.Context) (*netatmo.AuthenticatedClient, error) {
	n := cfg.Netatmo

	if n.AccessToken != "" {
		logger.Debug().Msg("Using configured access token")
		return netatmo.WithToken(netatmo.Token{AccessToken: n.AccessToken}, logger), nil
	}

	creds := netatmo.ClientCredentials{
		ClientID:     n.ClientID,
		ClientSecret: n.ClientSecret,
	}

	authenticated, err := netatmo.NewClient(creds, logger).Authenticate(ctx, n.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with Netatmo: %w", err)
	}

	return authenticated, nil
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

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("cannot use both --filter and --preset")
	}

	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		expr, ok := cfg.Filter[preset]
		if !ok {
			return "", fmt.Errorf("preset %q not found in config", preset)
		}
		return expr, nil
	}

	return "", nil
}

// versionCmd prints build metadata
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// version needs no config or API client
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("netatmo-cli %s (built %s)\n", version, buildTime)
	},
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test authentication against the Netatmo API",
	Long:  `Authenticate with the configured credentials and display the granted token scopes.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	// Authentication already happened during client creation
	fmt.Println("✓ Authentication successful!")

	token := client.Token()
	if token.ExpiresIn > 0 {
		fmt.Printf("- Token valid for: %s\n", time.Duration(token.ExpiresIn)*time.Second)
	}
	if len(token.Scopes) > 0 {
		fmt.Printf("- Scopes:\n")
		for _, scope := range token.Scopes {
			fmt.Printf("  • %s\n", scope)
		}
	}

	return nil
}

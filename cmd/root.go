package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/offsetkeyz/dupr-api-client/config"
	"github.com/offsetkeyz/dupr-api-client/dupr"
	"github.com/offsetkeyz/dupr-api-client/filter"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *dupr.Client
	compiler   = filter.NewCompiler()
	appVersion = "dev"
	appBuilt   = "unknown"

	// Command flags
	outputFormat    string
	versionOverride string
	whereExpr       string
	preset          string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dupr",
	Short: "Command-line access to the DUPR rating service",
	Long: `dupr talks to the DUPR backend: look up players and clubs, record and
search matches, and simulate rating changes.

The bearer token is read from api.token in the config file or from the
DUPR_API_TOKEN environment variable (a .env file in the working directory
is loaded first).`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build metadata injected by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuilt = buildTime
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table or json")
	rootCmd.PersistentFlags().StringVar(&versionOverride, "version-override", "", "API version for this invocation (e.g. v2.0)")
	rootCmd.PersistentFlags().StringVarP(&whereExpr, "where", "w", "", "filter list results with an expression")
	rootCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "use a filter preset from config")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	if cfg.Output.Format != "table" && cfg.Output.Format != "json" {
		return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", cfg.Output.Format)
	}

	client, err = dupr.NewClient(
		dupr.WithBaseURL(cfg.API.URL),
		dupr.WithVersion(cfg.API.Version),
		dupr.WithBearerToken(cfg.API.Token),
		dupr.WithTimeout(cfg.API.Timeout),
		dupr.WithUserAgent(cfg.API.UserAgent),
		dupr.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create DUPR client: %w", err)
	}

	if cfg.API.Token == "" {
		logger.Warn().Msg("No API token configured, requests will be unauthenticated")
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

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// callOptions returns the per-call options implied by global flags
func callOptions() []dupr.CallOption {
	if versionOverride == "" {
		return nil
	}
	return []dupr.CallOption{dupr.UseVersion(versionOverride)}
}

// getFilterExpression determines the filter expression to use, if any
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if whereExpr != "" {
		return whereExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

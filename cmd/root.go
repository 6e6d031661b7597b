package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/data4safety/d4s/internal/iofs"
	"github.com/data4safety/d4s/internal/iologger"
	app "github.com/data4safety/d4s/pkg"
	"github.com/data4safety/d4s/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "d4s",
		Short:   "Explore temporary protection decisions from Eurostat",
		Long: `d4s is a Data4Safety explorer of temporary protection decisions
granted in Europe (Eurostat dataset migr_asytpfm).

It loads the CSV export, drops metadata columns and rows without
citizenship, and summarizes the cleaned data as a monthly time series,
a map of citizenships and totals by geography and sex.

Commands:
  clean:     show the data cleaning report
  dashboard: show the dashboard with a paced time-series reveal
  charts:    render the dashboard as PNG charts
  serve:     serve the dashboard over HTTP and websocket
  export:    save cleaned data and summaries to xlsx, sqlite or json
  publish:   store a snapshot in PostgreSQL

Configuration precedence (highest to lowest):
  1. CLI flags (--input, --port, etc.)
  2. Environment variables (D4S_*)
  3. Config file (~/.config/d4s/config.yaml)
  4. Built-in defaults

Nested fields use underscores (dashboard.reveal_delay_ms becomes
D4S_DASHBOARD_REVEAL_DELAY_MS).`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "d4s version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for d4s")

	rootCmd.PersistentFlags().StringP(
		"input", "i", "",
		"CSV file with decisions (default from config input.path)",
	)

	rootCmd.AddCommand(
		getCleanCmd(),
		getDashboardCmd(),
		getChartsCmd(),
		getServeCmd(),
		getExportCmd(),
		getPublishCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureReferenceFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// CLI flags have the highest precedence
	cfg.Update(stringFlag(cmd, "input", config.OptInputPath))

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"input", cfg.Input.Path,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("D4S")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.path", "D4S_INPUT_PATH")
	v.BindEnv("input.delimiter", "D4S_INPUT_DELIMITER")

	// Cleaning configuration
	v.BindEnv("clean.drop_columns", "D4S_CLEAN_DROP_COLUMNS")
	v.BindEnv("clean.preview_rows", "D4S_CLEAN_PREVIEW_ROWS")

	// Dashboard configuration
	v.BindEnv("dashboard.reveal_delay_ms", "D4S_DASHBOARD_REVEAL_DELAY_MS")
	v.BindEnv("dashboard.geo_sentinels", "D4S_DASHBOARD_GEO_SENTINELS")
	v.BindEnv("dashboard.sex_sentinels", "D4S_DASHBOARD_SEX_SENTINELS")

	// Server configuration
	v.BindEnv("server.host", "D4S_SERVER_HOST")
	v.BindEnv("server.port", "D4S_SERVER_PORT")

	// Database configuration
	v.BindEnv("database.host", "D4S_DATABASE_HOST")
	v.BindEnv("database.port", "D4S_DATABASE_PORT")
	v.BindEnv("database.user", "D4S_DATABASE_USER")
	v.BindEnv("database.password", "D4S_DATABASE_PASSWORD")
	v.BindEnv("database.database", "D4S_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "D4S_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "D4S_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "D4S_LOG_LEVEL")
	v.BindEnv("log.format", "D4S_LOG_FORMAT")
	v.BindEnv("log.destination", "D4S_LOG_DESTINATION")

	v.AutomaticEnv()
}

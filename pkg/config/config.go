// Package config provides configuration management for d4s.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: path, delimiter
//   - Clean: drop_columns, preview_rows
//   - Dashboard: reveal_delay_ms, geo_sentinels, sex_sentinels
//   - Server: host, port
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use D4S_ prefix with underscores for nesting:
//
//	D4S_INPUT_PATH=/data/estat_migr_asytpfm_en.csv
//	D4S_DASHBOARD_REVEAL_DELAY_MS=50
//	D4S_SERVER_PORT=8080
//	D4S_LOG_LEVEL=debug
package config

// Config represents the complete d4s configuration.
type Config struct {
	// Input describes the source CSV file.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Clean contains settings of the cleaning step.
	Clean CleanConfig `mapstructure:"clean" yaml:"clean"`

	// Dashboard contains settings of the aggregation and reveal steps.
	Dashboard DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`

	// Server contains settings of the HTTP dashboard.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// Database contains PostgreSQL connection settings used by publish.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// InputConfig describes the delimited text file with decisions.
type InputConfig struct {
	// Path to the CSV file exported from Eurostat.
	Path string `mapstructure:"path" yaml:"path"`

	// Delimiter is a single character separating fields.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// CleanConfig contains settings of the cleaning step.
type CleanConfig struct {
	// DropColumns are removed in addition to OBS_FLAG and CONF_STATUS,
	// which the cleaner always drops. Absent columns are ignored.
	DropColumns []string `mapstructure:"drop_columns" yaml:"drop_columns"`

	// PreviewRows is the number of rows shown in raw and cleaned previews.
	PreviewRows int `mapstructure:"preview_rows" yaml:"preview_rows"`
}

// DashboardConfig contains settings of aggregations and of the
// time-series reveal.
type DashboardConfig struct {
	// RevealDelayMs is a pause between revealed time-series points.
	RevealDelayMs int `mapstructure:"reveal_delay_ms" yaml:"reveal_delay_ms"`

	// GeoSentinels are geo codes meaning "no geography".
	GeoSentinels []string `mapstructure:"geo_sentinels" yaml:"geo_sentinels"`

	// SexSentinels are sex codes meaning "no sex".
	SexSentinels []string `mapstructure:"sex_sentinels" yaml:"sex_sentinels"`
}

// ServerConfig contains settings of the HTTP dashboard.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of rows sent per CopyFrom call
	// during publish.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			Path:      "estat_migr_asytpfm_en.csv",
			Delimiter: ",",
		},
		Clean: CleanConfig{
			DropColumns: []string{"OBS_FLAG", "CONF_STATUS"},
			PreviewRows: 5,
		},
		Dashboard: DashboardConfig{
			RevealDelayMs: 100,
			GeoSentinels:  []string{"0", "UNK"},
			SexSentinels:  []string{"0", "UNK"},
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8501,
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "d4s",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// Delimiter returns the input delimiter as a rune.
func (c *Config) Delimiter() rune {
	for _, r := range c.Input.Delimiter {
		return r
	}
	return ','
}

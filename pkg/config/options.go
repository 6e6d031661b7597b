package config

import (
	"strings"
	"unicode/utf8"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputPath sets the path to the CSV file with decisions.
func OptInputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Path", s) {
			c.Input.Path = s
		}
	}
}

// OptInputDelimiter sets the field delimiter. It must be exactly one
// character; "\t" and "tab" are accepted for tab-separated files.
func OptInputDelimiter(s string) Option {
	if s == `\t` || strings.ToLower(s) == "tab" {
		s = "\t"
	}
	return func(c *Config) {
		if utf8.RuneCountInString(s) != 1 || s == "\n" || s == "\r" {
			gn.Warn("<em>Input Delimiter</em> must be one character, ignoring '%s'", s)
			return
		}
		c.Input.Delimiter = s
	}
}

// OptCleanDropColumns sets columns removed by the cleaner on top of
// OBS_FLAG and CONF_STATUS.
// An empty slice keeps the current value.
func OptCleanDropColumns(ss []string) Option {
	cols := trimAll(ss)
	return func(c *Config) {
		if len(cols) > 0 {
			c.Clean.DropColumns = cols
		}
	}
}

// OptCleanPreviewRows sets the number of rows shown in previews.
func OptCleanPreviewRows(i int) Option {
	return func(c *Config) {
		if isValidInt("Preview Rows", i) {
			c.Clean.PreviewRows = i
		}
	}
}

// OptDashboardRevealDelayMs sets the pause between revealed points.
// Zero disables pacing.
func OptDashboardRevealDelayMs(i int) Option {
	return func(c *Config) {
		if i < 0 {
			gn.Warn("<em>Reveal Delay</em> cannot be negative, ignoring %d", i)
			return
		}
		c.Dashboard.RevealDelayMs = i
	}
}

// OptDashboardGeoSentinels sets geo codes excluded from the geo x sex view.
func OptDashboardGeoSentinels(ss []string) Option {
	vals := trimAll(ss)
	return func(c *Config) {
		if len(vals) > 0 {
			c.Dashboard.GeoSentinels = vals
		}
	}
}

// OptDashboardSexSentinels sets sex codes excluded from the geo x sex view.
func OptDashboardSexSentinels(ss []string) Option {
	vals := trimAll(ss)
	return func(c *Config) {
		if len(vals) > 0 {
			c.Dashboard.SexSentinels = vals
		}
	}
}

// OptServerHost sets the interface the HTTP dashboard listens on.
func OptServerHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Server Host", s) {
			c.Server.Host = s
		}
	}
}

// OptServerPort sets the port of the HTTP dashboard.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows sent per bulk copy.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func trimAll(ss []string) []string {
	var res []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

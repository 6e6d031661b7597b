// Package iotesting provides shared helpers for integration tests.
package iotesting

import (
	"os"
	"testing"

	"github.com/data4safety/d4s/pkg/config"
)

// DatabaseEnv names the database used by integration tests. Tests that
// need PostgreSQL are skipped when it is empty.
const DatabaseEnv = "D4S_TEST_DATABASE"

// DatabaseConfig returns connection settings for integration tests or
// skips the test. Defaults are overridden by D4S_DATABASE_* variables,
// the database name always comes from D4S_TEST_DATABASE.
func DatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	name := os.Getenv(DatabaseEnv)
	if name == "" {
		t.Skipf("Skipping integration test, %s is not set", DatabaseEnv)
	}

	cfg := config.New()
	var opts []config.Option
	if v := os.Getenv("D4S_DATABASE_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("D4S_DATABASE_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("D4S_DATABASE_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	opts = append(opts, config.OptDatabaseDatabase(name))
	cfg.Update(opts)
	return &cfg.Database
}

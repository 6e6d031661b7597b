// Package db defines the contract of a PostgreSQL connection used by
// publishing.
package db

import (
	"context"

	"github.com/data4safety/d4s/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages the lifecycle of a connection pool. Components that
// need bulk inserts (CopyFrom) or transactions use Pool directly.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pool, nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)
}

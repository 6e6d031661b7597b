// Package lifecycle defines contracts of components that change a
// PostgreSQL database.
package lifecycle

import (
	"context"
)

// SchemaManager creates or updates snapshot tables. It is idempotent.
type SchemaManager interface {
	Migrate(ctx context.Context) error
}

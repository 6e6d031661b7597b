package lifecycle

import (
	"context"

	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/schema"
	"github.com/data4safety/d4s/pkg/table"
)

// Snapshot is the data of one publish.
type Snapshot struct {
	InputPath string
	Cleaning  *dashboard.Cleaning
	Dashboard *dashboard.Dashboard
}

// Cleaned returns the cleaned table of the snapshot.
func (s Snapshot) Cleaned() *table.Table {
	return s.Cleaning.Cleaned
}

// Publisher writes a snapshot to the database as a new run.
type Publisher interface {
	Publish(ctx context.Context, s Snapshot) (*schema.Run, error)
}

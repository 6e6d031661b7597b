// Package iopublish copies a cleaned table and its summaries to
// PostgreSQL. Every publish is a new run identified by a random UUID.
package iopublish

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/data4safety/d4s/pkg/config"
	"github.com/data4safety/d4s/pkg/db"
	"github.com/data4safety/d4s/pkg/lifecycle"
	"github.com/data4safety/d4s/pkg/schema"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type publisher struct {
	operator  db.Operator
	batchSize int
}

// New creates a Publisher. The operator must be connected before Publish
// is called.
func New(op db.Operator, cfg *config.Config) lifecycle.Publisher {
	return &publisher{
		operator:  op,
		batchSize: max(cfg.Database.BatchSize, 1),
	}
}

// Publish writes the run, all cleaned rows and the aggregates in one
// transaction. Nothing is written if any step fails.
func (p *publisher) Publish(
	ctx context.Context,
	s lifecycle.Snapshot,
) (*schema.Run, error) {
	pool := p.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}
	start := time.Now()

	run := newRun(s)
	decisions, err := decisionRows(run.ID, s.Cleaned())
	if err != nil {
		return nil, err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, PublishError("begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO publish_runs
			(id, created_at, input_path, "rows", removed, duplicates,
			 period_start, period_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.ID, run.CreatedAt, run.InputPath, run.Rows, run.Removed,
		run.Duplicates, run.PeriodStart, run.PeriodEnd,
	)
	if err != nil {
		return nil, PublishError("insert run", err)
	}

	if err = p.copyDecisions(ctx, tx, decisions); err != nil {
		return nil, err
	}

	d := s.Dashboard
	copies := []struct {
		table string
		cols  []string
		rows  [][]any
	}{
		{"time_series_points", timeSeriesColumns, timeSeriesRows(run.ID, d.TimeSeries)},
		{"citizen_counts", citizenColumns, citizenRows(run.ID, d.Citizens)},
		{"geo_sex_totals", geoSexColumns, geoSexRows(run.ID, d.GeoSex)},
	}
	for _, v := range copies {
		if len(v.rows) == 0 {
			continue
		}
		_, err = tx.CopyFrom(ctx, pgx.Identifier{v.table}, v.cols, pgx.CopyFromRows(v.rows))
		if err != nil {
			return nil, PublishError("copy "+v.table, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, PublishError("commit", err)
	}

	dur := time.Since(start)
	slog.Info("Snapshot published",
		"run", run.ID, "rows", run.Rows,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info("Published <em>%s</em> rows as run %s in %s",
		humanize.Comma(int64(run.Rows)), run.ID, gnfmt.TimeString(dur.Seconds()))
	return run, nil
}

func (p *publisher) copyDecisions(ctx context.Context, tx pgx.Tx, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	bar := pb.Full.Start(len(rows))
	bar.Set("prefix", "Publishing rows: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for i := 0; i < len(rows); i += p.batchSize {
		end := min(i+p.batchSize, len(rows))
		_, err := tx.CopyFrom(ctx, pgx.Identifier{"decisions"},
			decisionColumns, pgx.CopyFromRows(rows[i:end]))
		if err != nil {
			return PublishError("copy decisions", err)
		}
		bar.Add(end - i)
	}
	return nil
}

func newRun(s lifecycle.Snapshot) *schema.Run {
	c := s.Cleaning
	ts := s.Dashboard.TimeSeries
	return &schema.Run{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		InputPath:   s.InputPath,
		Rows:        c.Cleaned.Len(),
		Removed:     c.Removed,
		Duplicates:  c.Duplicates,
		PeriodStart: ts.Start,
		PeriodEnd:   ts.End,
	}
}

package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/data4safety/d4s/internal/iofs"
	"github.com/data4safety/d4s/internal/ioload"
	"github.com/data4safety/d4s/pkg/config"
	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/table"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// pipeline keeps the results of every step of one run.
type pipeline struct {
	raw       *table.Table
	cleaning  *dashboard.Cleaning
	dashboard *dashboard.Dashboard
}

// runPipeline loads the input file, cleans it and builds the dashboard.
// A load error aborts before cleaning.
func runPipeline(ctx context.Context, cfg *config.Config) (*pipeline, error) {
	start := time.Now()
	res := &pipeline{}

	var err error
	res.raw, err = ioload.Load(cfg.Input.Path, cfg.Delimiter())
	if err != nil {
		return nil, err
	}

	res.cleaning, err = dashboard.Clean(res.raw, cfg.Clean.DropColumns)
	if err != nil {
		return nil, err
	}

	ref, err := iofs.LoadReference(cfg.HomeDir)
	if err != nil {
		return nil, err
	}

	s := dashboard.Sentinels{
		Geo: cfg.Dashboard.GeoSentinels,
		Sex: cfg.Dashboard.SexSentinels,
	}
	res.dashboard, err = dashboard.Build(ctx, res.cleaning.Cleaned, ref, s)
	if err != nil {
		return nil, err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Pipeline finished",
		"input", cfg.Input.Path,
		"rows", res.raw.Len(),
		"cleaned", res.cleaning.Cleaned.Len(),
		"duration", dur,
	)
	gn.Info(
		"Processed <em>%s</em> rows (%s kept) in %s",
		humanize.Comma(int64(res.raw.Len())),
		humanize.Comma(int64(res.cleaning.Cleaned.Len())),
		dur,
	)
	return res, nil
}

func revealDelay(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Dashboard.RevealDelayMs) * time.Millisecond
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/data4safety/d4s/internal/iodb"
	"github.com/data4safety/d4s/internal/iopublish"
	"github.com/data4safety/d4s/internal/ioschema"
	"github.com/data4safety/d4s/pkg/config"
	"github.com/data4safety/d4s/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPublishCmd returns the publish command.
func getPublishCmd() *cobra.Command {
	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Store a snapshot of cleaned data in PostgreSQL",
		Long: `Publish writes the cleaned table and the dashboard summaries to
PostgreSQL as a new run.

This command:
  1. Loads, cleans and summarizes the input file
  2. Connects to PostgreSQL using configuration settings
  3. Runs GORM AutoMigrate to create missing snapshot tables
  4. Inserts a run record with a new UUID
  5. Copies cleaned rows and aggregates tagged with the run id

All rows of a run are written in one transaction. Earlier runs are
never changed.

Examples:
  d4s publish
  d4s publish --batch-size 10000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPublish(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	publishCmd.Flags().IntP(
		"batch-size", "b", 0,
		"rows per COPY batch (default from config database.batch_size)",
	)

	return publishCmd
}

func runPublish(cmd *cobra.Command) error {
	cfg.Update(intFlag(cmd, "batch-size", config.OptDatabaseBatchSize))

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	p, err := runPipeline(ctx, cfg)
	if err != nil {
		return err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	sm := ioschema.NewManager(op)
	if err = sm.Migrate(ctx); err != nil {
		return err
	}

	pub := iopublish.New(op, cfg)
	s := lifecycle.Snapshot{
		InputPath: cfg.Input.Path,
		Cleaning:  p.cleaning,
		Dashboard: p.dashboard,
	}
	_, err = pub.Publish(ctx, s)
	return err
}

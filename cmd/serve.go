package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/data4safety/d4s/internal/ioweb"
	"github.com/data4safety/d4s/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Long: `Serve computes the dashboard once and serves it until interrupted.

Endpoints:
  GET /api/health       status and number of cleaned rows
  GET /api/cleaning     data cleaning report
  GET /api/timeseries   monthly totals
  GET /api/citizens     map points by citizenship
  GET /api/geosex       totals by geography and sex
  GET /api/reference    citizenship reference table
  GET /ws/reveal        websocket streaming the time-series reveal,
                        optional ?delay_ms=N overrides the pause
  GET /metrics          Prometheus metrics

SIGINT or SIGTERM shuts the server down gracefully.

Examples:
  d4s serve
  d4s serve --host 0.0.0.0 --port 9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runServe(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().String("host", "", "address to listen on")
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on")

	return serveCmd
}

func runServe(cmd *cobra.Command) error {
	cfg.Update(stringFlag(cmd, "host", config.OptServerHost))
	cfg.Update(intFlag(cmd, "port", config.OptServerPort))

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	p, err := runPipeline(ctx, cfg)
	if err != nil {
		return err
	}

	srv := ioweb.New(cfg, p.raw, p.cleaning, p.dashboard)
	gn.Info("Dashboard is served at <em>http://%s</em>", srv.Addr())
	if err = srv.Run(ctx); err != nil {
		return err
	}
	gn.Info("Server stopped")
	return nil
}

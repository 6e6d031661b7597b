package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/data4safety/d4s/internal/ioreport"
	"github.com/data4safety/d4s/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getDashboardCmd returns the dashboard command.
func getDashboardCmd() *cobra.Command {
	dashCmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the dashboard in the terminal",
		Long: `Dashboard prints all summaries of the cleaned data.

The time series of decisions is revealed point by point with a
progress bar, followed by the citizenship map points, totals by
geography and sex, and the citizenship reference table.

The pause between revealed points comes from dashboard.reveal_delay_ms
and can be changed with --delay. Ctrl-C stops the reveal.

Examples:
  d4s dashboard
  d4s dashboard --delay 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDashboard(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	dashCmd.Flags().IntP(
		"delay", "d", 0,
		"pause between revealed points in milliseconds",
	)

	return dashCmd
}

func runDashboard(cmd *cobra.Command) error {
	cfg.Update(intFlag(cmd, "delay", config.OptDashboardRevealDelayMs))

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	p, err := runPipeline(ctx, cfg)
	if err != nil {
		return err
	}

	rep := ioreport.New(os.Stdout, cfg.Clean.PreviewRows, revealDelay(cfg))
	err = rep.Dashboard(ctx, p.dashboard)
	if errors.Is(err, context.Canceled) {
		gn.Warn("Dashboard reveal interrupted")
		return nil
	}
	return err
}

package cmd

import (
	"context"
	"path/filepath"

	"github.com/data4safety/d4s/internal/iochart"
	"github.com/data4safety/d4s/internal/iofs"
	"github.com/data4safety/d4s/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getChartsCmd returns the charts command.
func getChartsCmd() *cobra.Command {
	chartsCmd := &cobra.Command{
		Use:   "charts",
		Short: "Render dashboard charts as PNG files",
		Long: `Charts renders the dashboard summaries as PNG images:

  timeseries.png  monthly number of decisions
  citizens.png    decisions by citizenship, bubble size follows the count
  geosex.png      decisions by geography, stacked by sex

Citizenships without coordinates are left out of the map.
Files are written to --output (default ~/.cache/d4s/charts).
Existing files are replaced.

Examples:
  d4s charts
  d4s charts -o ./charts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCharts(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	chartsCmd.Flags().StringP(
		"output", "o", "",
		"directory for PNG files",
	)

	return chartsCmd
}

func runCharts(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString("output")
	if dir == "" {
		dir = filepath.Join(config.CacheDir(cfg.HomeDir), "charts")
	}
	if err := iofs.EnsureDir(dir); err != nil {
		return err
	}

	p, err := runPipeline(context.Background(), cfg)
	if err != nil {
		return err
	}

	paths, err := iochart.All(p.dashboard, dir)
	if err != nil {
		return err
	}
	for _, v := range paths {
		gn.Info("Chart saved to <em>%s</em>", v)
	}
	return nil
}

package cmd

import (
	"context"
	"os"

	"github.com/data4safety/d4s/internal/ioreport"
	"github.com/data4safety/d4s/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCleanCmd returns the clean command.
func getCleanCmd() *cobra.Command {
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Show the data cleaning report",
		Long: `Clean loads the input file and prints the data cleaning report.

This command:
  1. Loads the CSV file (--input or input.path in config)
  2. Shows a preview of raw rows, the shape and numeric statistics
  3. Counts missing values per column
  4. Drops OBS_FLAG and CONF_STATUS (absent columns are ignored)
  5. Drops rows without citizen and reports how many were removed
  6. Reports duplicated rows (they are kept)

The source file is never modified.

Examples:
  d4s clean
  d4s clean -i estat_migr_asytpfm_en.csv --preview 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runClean(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	cleanCmd.Flags().IntP(
		"preview", "p", 0,
		"number of preview rows (default from config clean.preview_rows)",
	)

	return cleanCmd
}

func runClean(cmd *cobra.Command) error {
	cfg.Update(intFlag(cmd, "preview", config.OptCleanPreviewRows))

	p, err := runPipeline(context.Background(), cfg)
	if err != nil {
		return err
	}

	rep := ioreport.New(os.Stdout, cfg.Clean.PreviewRows, revealDelay(cfg))
	return rep.Cleaning(p.raw, p.cleaning)
}

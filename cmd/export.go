package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/data4safety/d4s/internal/ioexport"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Save cleaned data and summaries to a file",
		Long: `Export writes the cleaned table, the time series, the citizenship
map, totals by geography and sex and the citizenship reference table
to one file.

Formats:
  xlsx    Excel workbook, one sheet per view
  sqlite  SQLite database, one table per view
  json    pretty-printed JSON document

The format is taken from --format or guessed from the extension of
--output (.xlsx, .sqlite, .db, .json). Existing files are replaced.

Examples:
  d4s export -o d4s.xlsx
  d4s export -o snapshot.db
  d4s export -f json -o snapshot.out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringP(
		"format", "f", "",
		fmt.Sprintf("output format %v", ioexport.Formats),
	)
	exportCmd.Flags().StringP(
		"output", "o", "d4s.xlsx",
		"output file",
	)

	return exportCmd
}

func runExport(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("format")
	path, _ := cmd.Flags().GetString("output")

	f, err := ioexport.ParseFormat(name, path)
	if err != nil {
		return err
	}

	p, err := runPipeline(context.Background(), cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	s := ioexport.Snapshot{
		Cleaned:   p.cleaning.Cleaned,
		Dashboard: p.dashboard,
	}
	if err = ioexport.Export(f, path, s); err != nil {
		return err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	gn.Info("Exported %s to <em>%s</em> in %s", f, path, dur)
	return nil
}

// Package ioreport renders the cleaning and dashboard views as plain text.
package ioreport

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/table"
	"github.com/dustin/go-humanize"
)

// Reporter writes views to w. Progress bars go to the same writer.
type Reporter struct {
	w           io.Writer
	previewRows int
	delay       time.Duration
}

// New creates a Reporter. Negative previewRows are treated as zero, delay
// is the pause between revealed time-series points.
func New(w io.Writer, previewRows int, delay time.Duration) *Reporter {
	return &Reporter{
		w:           w,
		previewRows: max(previewRows, 0),
		delay:       max(delay, 0),
	}
}

// Cleaning renders the "Data Cleaning" view.
func (r *Reporter) Cleaning(raw *table.Table, res *dashboard.Cleaning) error {
	r.title("Data Cleaning")

	r.section(fmt.Sprintf("Raw data (first %d rows)", r.previewRows))
	if err := r.table(raw.Columns(), raw.Head(r.previewRows).Rows()); err != nil {
		return err
	}

	rows, cols := raw.Shape()
	fmt.Fprintf(r.w, "\nShape: %s rows, %d columns\n",
		humanize.Comma(int64(rows)), cols)

	r.section("Summary statistics")
	if err := r.describe(raw.Describe()); err != nil {
		return err
	}

	r.section("Missing values")
	var missing [][]string
	for _, v := range raw.MissingCounts() {
		missing = append(missing, []string{v.Column, humanize.Comma(int64(v.Count))})
	}
	if err := r.table([]string{"column", "missing"}, missing); err != nil {
		return err
	}

	if len(res.DroppedColumns) > 0 {
		fmt.Fprintf(r.w, "\nDropped columns: %s\n", strings.Join(res.DroppedColumns, ", "))
	}

	r.section(fmt.Sprintf("Cleaned data (first %d rows)", r.previewRows))
	cleaned := res.Cleaned
	if err := r.table(cleaned.Columns(), cleaned.Head(r.previewRows).Rows()); err != nil {
		return err
	}

	fmt.Fprintf(r.w, "\nRows removed (missing citizen): %s\n",
		humanize.Comma(int64(res.Removed)))
	fmt.Fprintf(r.w, "Duplicate rows: %s\n", humanize.Comma(int64(res.Duplicates)))
	return nil
}

// Dashboard renders the "Dashboard" view. The time series is revealed one
// point at a time, cancelling ctx stops the reveal.
func (r *Reporter) Dashboard(ctx context.Context, d *dashboard.Dashboard) error {
	r.title("Dashboard")

	if err := r.Reveal(ctx, d.TimeSeries); err != nil {
		return err
	}

	r.section("Number of people by citizenship")
	var pts [][]string
	for _, v := range d.Citizens.Points {
		lat, lon := "-", "-"
		if v.HasCoordinate() {
			lat = formatFloat(*v.Lat)
			lon = formatFloat(*v.Lon)
		}
		pts = append(pts, []string{
			v.Citizen, lat, lon, humanize.Comma(int64(v.Count)),
			strconv.FormatFloat(v.Radius, 'f', -1, 64),
			strconv.FormatFloat(v.RadiusScaled, 'f', -1, 64),
			strings.ReplaceAll(v.Tooltip(), "\n", ": "),
		})
	}
	err := r.table(
		[]string{"citizen", "lat", "lon", "count", "radius", "radius_scaled", "tooltip"},
		pts,
	)
	if err != nil {
		return err
	}
	if lat, lon, ok := d.Citizens.Center(); ok {
		fmt.Fprintf(r.w, "\nMap center: %.4f, %.4f\n", lat, lon)
	}

	r.section("Number of People Granted Temporary Protection by Geo and Sex")
	if err := r.geoSex(d.GeoSex); err != nil {
		return err
	}

	r.section("Citizenship")
	var cit [][]string
	for _, v := range d.Citizenship {
		cit = append(cit, []string{v.Code, v.Country, v.Continent})
	}
	return r.table([]string{"code", "country", "continent"}, cit)
}

// Reveal prints time-series points one by one with a progress bar.
func (r *Reporter) Reveal(ctx context.Context, ts dashboard.TimeSeries) error {
	title := "Number of people granted temporary protection"
	if ts.Len() > 0 {
		title = fmt.Sprintf("%s from %s to %s", title, ts.Start, ts.End)
	}
	r.section(title)
	if ts.Len() == 0 {
		fmt.Fprintln(r.w, "No data")
		return nil
	}

	bar := pb.Full.New(ts.Len())
	bar.SetWriter(r.w)
	bar.Set(pb.CleanOnFinish, true)
	bar.Start()

	var lines []string
	for f := range ts.Reveal() {
		if err := sleep(ctx, r.delay); err != nil {
			bar.Finish()
			return err
		}
		bar.Set("prefix", fmt.Sprintf("Processing %d/%d ", f.Step, f.Total))
		bar.Increment()
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s",
			f.Point.Period,
			humanize.Commaf(f.Point.Value),
			humanize.Commaf(f.Cumulative),
		))
	}
	bar.Finish()

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "period\tvalue\tcumulative")
	for _, v := range lines {
		fmt.Fprintln(tw, v)
	}
	return tw.Flush()
}

func (r *Reporter) geoSex(gs dashboard.GeoSex) error {
	sexes := gs.Sexes()
	header := append([]string{"geo"}, sexes...)
	header = append(header, "total")

	var rows [][]string
	for _, v := range gs.Totals() {
		row := []string{v.Geo}
		for _, s := range sexes {
			row = append(row, humanize.Commaf(gs.Value(v.Geo, s)))
		}
		row = append(row, humanize.Commaf(v.Value))
		rows = append(rows, row)
	}
	if err := r.table(header, rows); err != nil {
		return err
	}
	if gs.ExcludedRows > 0 {
		fmt.Fprintf(r.w, "\nExcluded rows (unknown geo or sex): %s, value %s\n",
			humanize.Comma(int64(gs.ExcludedRows)), humanize.Commaf(gs.ExcludedValue))
	}
	return nil
}

func (r *Reporter) describe(stats []table.Summary) error {
	header := []string{"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	var rows [][]string
	for _, v := range stats {
		rows = append(rows, []string{
			v.Column, strconv.Itoa(v.Count),
			formatFloat(v.Mean), formatFloat(v.Std), formatFloat(v.Min),
			formatFloat(v.Q25), formatFloat(v.Median), formatFloat(v.Q75),
			formatFloat(v.Max),
		})
	}
	return r.table(header, rows)
}

func (r *Reporter) title(s string) {
	fmt.Fprintf(r.w, "\n%s\n%s\n", s, strings.Repeat("=", len(s)))
}

func (r *Reporter) section(s string) {
	fmt.Fprintf(r.w, "\n%s\n%s\n", s, strings.Repeat("-", len(s)))
}

func (r *Reporter) table(header []string, rows [][]string) error {
	if len(rows) == 0 {
		fmt.Fprintln(r.w, "No data")
		return nil
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v
			if v == "" {
				cells[i] = "NaN"
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

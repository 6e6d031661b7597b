// Package iochart renders dashboard summaries as PNG charts.
package iochart

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/data4safety/d4s/pkg/dashboard"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// File names written by All.
const (
	TimeSeriesFile = "timeseries.png"
	CitizensFile   = "citizens.png"
	GeoSexFile     = "geosex.png"
)

const (
	width  = 12 * vg.Inch
	height = 7 * vg.Inch

	// bubble radius bounds in points
	minBubble = 3
	maxBubble = 40
)

var lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// All writes the three charts of a dashboard to dir and returns their
// paths.
func All(d *dashboard.Dashboard, dir string) ([]string, error) {
	res := []string{
		filepath.Join(dir, TimeSeriesFile),
		filepath.Join(dir, CitizensFile),
		filepath.Join(dir, GeoSexFile),
	}
	if err := TimeSeries(d.TimeSeries, res[0]); err != nil {
		return nil, err
	}
	if err := Citizens(d.Citizens, res[1]); err != nil {
		return nil, err
	}
	if err := GeoSex(d.GeoSex, res[2]); err != nil {
		return nil, err
	}
	return res, nil
}

// TimeSeries draws monthly totals as a line.
func TimeSeries(ts dashboard.TimeSeries, path string) error {
	p := plot.New()
	p.Title.Text = "Number of people granted temporary protection"
	if ts.Len() > 0 {
		p.Title.Text += fmt.Sprintf(" from %s to %s", ts.Start, ts.End)
	}
	p.X.Label.Text = "Time Period"
	p.Y.Label.Text = "Number of People"
	p.Add(plotter.NewGrid())

	if ts.Len() > 0 {
		pts := make(plotter.XYs, ts.Len())
		labels := make([]string, ts.Len())
		for i, v := range ts.Points {
			pts[i].X = float64(i)
			pts[i].Y = v.Value
			labels[i] = v.Period
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return ChartRenderError(path, err)
		}
		line.Color = lineColor
		line.Width = vg.Points(2)
		p.Add(line)
		p.NominalX(labels...)
		p.X.Tick.Label.Rotation = 0.8
		p.X.Tick.Label.XAlign = draw.XRight
	}

	return save(p, path)
}

// Citizens draws one bubble per citizenship with a coordinate. Points
// without coordinates are left out.
func Citizens(m dashboard.CitizenMap, path string) error {
	p := plot.New()
	p.Title.Text = "Number of people requesting protection by citizenship"
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.Add(plotter.NewGrid())

	pts := m.Plottable()
	if len(pts) > 0 {
		xys := make(plotter.XYs, len(pts))
		labels := make([]string, len(pts))
		for i, v := range pts {
			xys[i].X = *v.Lon
			xys[i].Y = *v.Lat
			labels[i] = v.Citizen
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return ChartRenderError(path, err)
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  color.RGBA{R: 255, G: 0, B: 0, A: 160},
				Radius: vg.Points(bubble(pts[i].Radius)),
				Shape:  draw.CircleGlyph{},
			}
		}
		p.Add(sc)

		lb, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return ChartRenderError(path, err)
		}
		p.Add(lb)
	}

	return save(p, path)
}

// GeoSex draws one stacked bar per geo, one stack layer per sex.
func GeoSex(gs dashboard.GeoSex, path string) error {
	p := plot.New()
	p.Title.Text = "Number of People Granted Temporary Protection by Geo and Sex"
	p.X.Label.Text = "Geo"
	p.Y.Label.Text = "Number of People"
	p.Legend.Top = true
	p.Legend.Add("Sex")

	geos := gs.Geos()
	if len(geos) > 0 {
		var below *plotter.BarChart
		for i, sex := range gs.Sexes() {
			vals := make(plotter.Values, len(geos))
			for j, geo := range geos {
				vals[j] = gs.Value(geo, sex)
			}
			bars, err := plotter.NewBarChart(vals, vg.Points(14))
			if err != nil {
				return ChartRenderError(path, err)
			}
			bars.Color = plotutil.Color(i)
			bars.LineStyle.Width = vg.Length(0)
			if below != nil {
				bars.StackOn(below)
			}
			below = bars
			p.Add(bars)
			p.Legend.Add(sex, bars)
		}
		p.NominalX(geos...)
	}

	return save(p, path)
}

// bubble keeps marker sizes readable for both tiny and huge counts.
func bubble(radius float64) float64 {
	return min(max(radius, minBubble), maxBubble)
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return ChartRenderError(path, err)
	}
	slog.Info("Chart saved", "path", path)
	return nil
}

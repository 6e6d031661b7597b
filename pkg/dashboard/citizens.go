package dashboard

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/data4safety/d4s/pkg/reference"
	"github.com/data4safety/d4s/pkg/table"
)

const (
	// RadiusDivisor turns a row count into a marker radius.
	RadiusDivisor = 100.0
	// RadiusScale turns a radius back into the number shown in tooltips.
	RadiusScale = 100.0
)

// CitizenPoint is the number of rows of one citizenship eligible for the
// map. Lat and Lon are nil for codes without a coordinate.
type CitizenPoint struct {
	Citizen      string   `json:"citizen"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	Count        int      `json:"count"`
	Radius       float64  `json:"radius"`
	RadiusScaled float64  `json:"radius_scaled"`
}

// HasCoordinate returns true when the point can be placed on a map.
func (p CitizenPoint) HasCoordinate() bool {
	return p.Lat != nil && p.Lon != nil
}

// Tooltip returns the text shown when hovering over the marker.
func (p CitizenPoint) Tooltip() string {
	return fmt.Sprintf(
		"%s\nNumber of people (request protection): %s",
		p.Citizen, strconv.FormatFloat(p.RadiusScaled, 'f', -1, 64),
	)
}

// CitizenMap keeps points sorted by citizenship code.
type CitizenMap struct {
	Points []CitizenPoint `json:"points"`
}

// CitizenMapOf counts rows per citizenship for codes eligible in ref and
// joins them with coordinates. Codes outside the allow-list are skipped
// here only. Unmapped codes are kept with nil coordinates.
func CitizenMapOf(t *table.Table, ref *reference.Reference) (CitizenMap, error) {
	res := CitizenMap{Points: []CitizenPoint{}}
	if t.Len() == 0 {
		return res, nil
	}
	c := locate(t)
	if err := c.require("build the citizenship map", ColCitizen); err != nil {
		return res, err
	}

	counts := make(map[string]int)
	for _, row := range t.All() {
		code := row[c.citizen]
		if !ref.Eligible(code) {
			continue
		}
		counts[code]++
	}

	res.Points = make([]CitizenPoint, 0, len(counts))
	for code, count := range counts {
		lat, lon := ref.Coordinate(code)
		radius := float64(count) / RadiusDivisor
		res.Points = append(res.Points, CitizenPoint{
			Citizen: code,
			Lat:     lat,
			Lon:     lon,
			Count:   count,
			Radius:  radius,
			// rounding removes float drift, RadiusScaled equals Count
			RadiusScaled: math.Round(radius * RadiusScale),
		})
	}
	slices.SortFunc(res.Points, func(a, b CitizenPoint) int {
		return strings.Compare(a.Citizen, b.Citizen)
	})
	return res, nil
}

// Plottable returns points that have a coordinate.
func (m CitizenMap) Plottable() []CitizenPoint {
	var res []CitizenPoint
	for _, v := range m.Points {
		if v.HasCoordinate() {
			res = append(res, v)
		}
	}
	return res
}

// Center returns the mean latitude and longitude of plottable points.
// The last value is false when nothing can be plotted.
func (m CitizenMap) Center() (float64, float64, bool) {
	pts := m.Plottable()
	if len(pts) == 0 {
		return 0, 0, false
	}
	var lat, lon float64
	for _, v := range pts {
		lat += *v.Lat
		lon += *v.Lon
	}
	n := float64(len(pts))
	return lat / n, lon / n, true
}

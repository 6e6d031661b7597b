package ioexport

import (
	"os"

	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/reference"
	"github.com/gnames/gnfmt"
)

// Document is the JSON form of a Snapshot.
type Document struct {
	Columns     []string                 `json:"columns"`
	Rows        [][]string               `json:"rows"`
	TimeSeries  dashboard.TimeSeries     `json:"time_series"`
	Citizens    dashboard.CitizenMap     `json:"citizens"`
	GeoSex      dashboard.GeoSex         `json:"geo_sex"`
	Citizenship []reference.Citizenship `json:"citizenship"`
}

func exportJSON(path string, s Snapshot) error {
	doc := Document{
		Columns:     s.Cleaned.Columns(),
		Rows:        s.Cleaned.Rows(),
		TimeSeries:  s.Dashboard.TimeSeries,
		Citizens:    s.Dashboard.Citizens,
		GeoSex:      s.Dashboard.GeoSex,
		Citizenship: s.Dashboard.Citizenship,
	}
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

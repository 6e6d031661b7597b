// Package dashboard cleans temporary-protection decision tables and
// computes the summaries shown by presenters: the monthly time series,
// the per-citizenship map and the geo x sex breakdown.
//
// Everything here is pure. Reference data is injected, timing of the
// time-series reveal is left to presenters.
package dashboard

import (
	"strconv"

	"github.com/data4safety/d4s/pkg/table"
)

// Column names of the Eurostat estat_migr_asytpfm export.
const (
	ColTimePeriod = "TIME_PERIOD"
	ColCitizen    = "citizen"
	ColGeo        = "geo"
	ColSex        = "sex"
	ColObsValue   = "OBS_VALUE"
	ColObsFlag    = "OBS_FLAG"
	ColConfStatus = "CONF_STATUS"
)

// Record is a typed view of one row.
type Record struct {
	TimePeriod string
	Citizen    string
	Geo        string
	Sex        string
	// ObsValue is meaningful only when HasValue is true.
	ObsValue float64
	HasValue bool
}

// columns keeps positions of domain columns, -1 for absent ones.
type columns struct {
	time, citizen, geo, sex, value int
}

func locate(t *table.Table) columns {
	return columns{
		time:    t.Index(ColTimePeriod),
		citizen: t.Index(ColCitizen),
		geo:     t.Index(ColGeo),
		sex:     t.Index(ColSex),
		value:   t.Index(ColObsValue),
	}
}

func (c columns) require(op string, names ...string) error {
	pos := map[string]int{
		ColTimePeriod: c.time,
		ColCitizen:    c.citizen,
		ColGeo:        c.geo,
		ColSex:        c.sex,
		ColObsValue:   c.value,
	}
	for _, v := range names {
		if pos[v] < 0 {
			return table.MissingColumnError(v, op)
		}
	}
	return nil
}

func cell(row []string, i int) string {
	if i < 0 {
		return ""
	}
	return row[i]
}

func (c columns) record(row []string) (Record, error) {
	res := Record{
		TimePeriod: cell(row, c.time),
		Citizen:    cell(row, c.citizen),
		Geo:        cell(row, c.geo),
		Sex:        cell(row, c.sex),
	}
	s := cell(row, c.value)
	if table.IsMissing(s) {
		return res, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return res, ObsValueError(s, err)
	}
	res.ObsValue = f
	res.HasValue = true
	return res, nil
}

// Records converts all rows of a table to records. Absent domain columns
// produce empty fields.
func Records(t *table.Table) ([]Record, error) {
	c := locate(t)
	res := make([]Record, t.Len())
	for i, row := range t.All() {
		r, err := c.record(row)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

package iopublish

import (
	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/table"
)

var (
	decisionColumns = []string{
		"run_id", "row_num", "row_key", "time_period",
		"citizen", "geo", "sex", "obs_value",
	}
	timeSeriesColumns = []string{"run_id", "period", "value"}
	citizenColumns    = []string{"run_id", "citizen", "lat", "lon", "count", "radius"}
	geoSexColumns     = []string{"run_id", "geo", "sex", "value"}
)

// decisionRows converts the cleaned table to CopyFrom rows. Missing
// observation values become NULL.
func decisionRows(runID string, t *table.Table) ([][]any, error) {
	recs, err := dashboard.Records(t)
	if err != nil {
		return nil, err
	}
	res := make([][]any, 0, len(recs))
	for i, row := range t.All() {
		r := recs[i]
		var value *float64
		if r.HasValue {
			v := r.ObsValue
			value = &v
		}
		res = append(res, []any{
			runID, i, table.RowKey(row), r.TimePeriod,
			r.Citizen, r.Geo, r.Sex, value,
		})
	}
	return res, nil
}

func timeSeriesRows(runID string, ts dashboard.TimeSeries) [][]any {
	res := make([][]any, len(ts.Points))
	for i, v := range ts.Points {
		res[i] = []any{runID, v.Period, v.Value}
	}
	return res
}

func citizenRows(runID string, m dashboard.CitizenMap) [][]any {
	res := make([][]any, len(m.Points))
	for i, v := range m.Points {
		res[i] = []any{runID, v.Citizen, v.Lat, v.Lon, v.Count, v.Radius}
	}
	return res
}

func geoSexRows(runID string, gs dashboard.GeoSex) [][]any {
	res := make([][]any, len(gs.Values))
	for i, v := range gs.Values {
		res[i] = []any{runID, v.Geo, v.Sex, v.Value}
	}
	return res
}

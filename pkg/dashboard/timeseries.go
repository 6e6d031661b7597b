package dashboard

import (
	"slices"
	"strings"

	"github.com/data4safety/d4s/pkg/table"
)

// Point is the total of observation values of one reporting period.
type Point struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// TimeSeries keeps points in ascending order of period. Start and End are
// the first and last periods, empty for an empty series.
type TimeSeries struct {
	Points []Point `json:"points"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
}

// TimeSeriesOf groups rows by TIME_PERIOD and sums OBS_VALUE. Rows with a
// missing period are not grouped, missing values add nothing. A table
// without rows gives an empty series.
func TimeSeriesOf(t *table.Table) (TimeSeries, error) {
	res := TimeSeries{Points: []Point{}}
	if t.Len() == 0 {
		return res, nil
	}
	c := locate(t)
	err := c.require("build the time series", ColTimePeriod, ColObsValue)
	if err != nil {
		return res, err
	}

	sums := make(map[string]float64)
	for _, row := range t.All() {
		r, err := c.record(row)
		if err != nil {
			return res, err
		}
		if table.IsMissing(r.TimePeriod) {
			continue
		}
		sums[r.TimePeriod] += r.ObsValue
	}

	res.Points = make([]Point, 0, len(sums))
	for k, v := range sums {
		res.Points = append(res.Points, Point{Period: k, Value: v})
	}
	slices.SortFunc(res.Points, func(a, b Point) int {
		return strings.Compare(a.Period, b.Period)
	})

	if l := len(res.Points); l > 0 {
		res.Start = res.Points[0].Period
		res.End = res.Points[l-1].Period
	}
	return res, nil
}

// Len returns the number of periods.
func (ts TimeSeries) Len() int {
	return len(ts.Points)
}

// Total is the sum of all points.
func (ts TimeSeries) Total() float64 {
	var res float64
	for _, v := range ts.Points {
		res += v.Value
	}
	return res
}

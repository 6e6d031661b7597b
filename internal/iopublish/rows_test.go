package iopublish

import (
	"context"
	"testing"

	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/data4safety/d4s/pkg/lifecycle"
	"github.com/data4safety/d4s/pkg/reference"
	"github.com/data4safety/d4s/pkg/table"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleaned() *table.Table {
	return table.New(
		[]string{"TIME_PERIOD", "citizen", "geo", "sex", "OBS_VALUE"},
		[][]string{
			{"2022-03", "UA", "PL", "F", "20"},
			{"2022-04", "IS", "EL", "M", ""},
			{"2022-03", "UA", "PL", "F", "20"},
		},
	)
}

func snapshot(t *testing.T) lifecycle.Snapshot {
	res, err := dashboard.Clean(cleaned(), nil)
	require.NoError(t, err)
	d, err := dashboard.Build(context.Background(), res.Cleaned,
		reference.Default(), dashboard.DefaultSentinels)
	require.NoError(t, err)
	return lifecycle.Snapshot{InputPath: "in.csv", Cleaning: res, Dashboard: d}
}

func TestDecisionRows(t *testing.T) {
	rows, err := decisionRows("run", cleaned())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for _, v := range rows {
		assert.Len(t, v, len(decisionColumns))
	}
	assert.Equal(t, 0, rows[0][1])
	assert.Equal(t, "UA", rows[0][4])
	assert.Equal(t, 20.0, *rows[0][7].(*float64))
	assert.Nil(t, rows[1][7].(*float64), "missing value is NULL")
	assert.Equal(t, rows[0][2], rows[2][2], "duplicates share a row key")
	assert.NotEqual(t, rows[0][2], rows[1][2])
}

func TestDecisionRowsBadValue(t *testing.T) {
	tbl := table.New([]string{"citizen", "OBS_VALUE"}, [][]string{{"UA", "x"}})
	_, err := decisionRows("run", tbl)
	require.Error(t, err)
	assert.Equal(t, errcode.ObsValueError, err.(*gn.Error).Code)
}

func TestAggregateRows(t *testing.T) {
	s := snapshot(t)
	d := s.Dashboard

	ts := timeSeriesRows("run", d.TimeSeries)
	require.Len(t, ts, 2)
	assert.Equal(t, []any{"run", "2022-03", 40.0}, ts[0])

	cit := citizenRows("run", d.Citizens)
	require.Len(t, cit, 2)
	assert.Len(t, cit[0], len(citizenColumns))
	assert.Equal(t, "IS", cit[0][1])

	gs := geoSexRows("run", d.GeoSex)
	require.Len(t, gs, 2)
	assert.Len(t, gs[0], len(geoSexColumns))
}

func TestNewRun(t *testing.T) {
	run := newRun(snapshot(t))
	assert.Len(t, run.ID, 36)
	assert.Equal(t, "in.csv", run.InputPath)
	assert.Equal(t, 3, run.Rows)
	assert.Equal(t, 1, run.Duplicates)
	assert.Equal(t, "2022-03", run.PeriodStart)
	assert.Equal(t, "2022-04", run.PeriodEnd)
	assert.NotEqual(t, run.ID, newRun(snapshot(t)).ID)
}

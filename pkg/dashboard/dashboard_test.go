package dashboard_test

import (
	"context"
	"testing"

	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/data4safety/d4s/pkg/reference"
	"github.com/data4safety/d4s/pkg/table"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{
	"freq", "unit", "citizen", "sex", "age", "geo",
	"TIME_PERIOD", "OBS_VALUE", "OBS_FLAG", "CONF_STATUS",
}

func rawTable() *table.Table {
	return table.New(header, [][]string{
		{"M", "PER", "UA", "M", "TOTAL", "EL", "2022-04", "10", "", ""},
		{"M", "PER", "", "F", "TOTAL", "EL", "2022-04", "5", "", ""},
		{"M", "PER", "UA", "F", "TOTAL", "PL", "2022-03", "20", "p", ""},
		{"M", "PER", "AD", "F", "TOTAL", "PL", "2022-03", "3", "", ""},
		{"M", "PER", "IS", "UNK", "TOTAL", "PL", "2022-05", "7", "", ""},
		{"M", "PER", "SY", "M", "TOTAL", "UNK", "2022-05", "", "", ""},
		{"M", "PER", "UA", "M", "TOTAL", "EL", "2022-04", "10", "", ""},
		{"M", "PER", "", "M", "TOTAL", "DE", "2022-06", "1", "", ""},
	})
}

func cleaned(t *testing.T) *table.Table {
	res, err := dashboard.Clean(rawTable(), dashboard.DefaultDropColumns)
	require.NoError(t, err)
	return res.Cleaned
}

func sumValues(t *testing.T, tbl *table.Table) float64 {
	recs, err := dashboard.Records(tbl)
	require.NoError(t, err)
	var res float64
	for _, v := range recs {
		res += v.ObsValue
	}
	return res
}

func TestClean(t *testing.T) {
	res, err := dashboard.Clean(rawTable(), dashboard.DefaultDropColumns)
	require.NoError(t, err)

	assert.Equal(t, []string{"OBS_FLAG", "CONF_STATUS"}, res.DroppedColumns)
	assert.False(t, res.Cleaned.Has("OBS_FLAG"))
	assert.False(t, res.Cleaned.Has("CONF_STATUS"))
	assert.Equal(t, 2, res.Removed)
	assert.Equal(t, 6, res.Cleaned.Len())
	assert.Equal(t, 1, res.Duplicates, "duplicates are counted")

	idx := res.Cleaned.Index("citizen")
	for _, row := range res.Cleaned.All() {
		assert.NotEmpty(t, row[idx])
	}
	assert.Equal(t, "PL", res.Cleaned.Row(1)[5], "order is kept")
}

func TestCleanToleratesAbsentColumns(t *testing.T) {
	tbl := table.New(
		[]string{"citizen", "OBS_VALUE"},
		[][]string{{"UA", "1"}, {"", "2"}},
	)
	res, err := dashboard.Clean(tbl, dashboard.DefaultDropColumns)
	require.NoError(t, err)
	assert.Nil(t, res.DroppedColumns)
	assert.Equal(t, 1, res.Cleaned.Len())
	assert.Equal(t, 1, res.Removed)
}

func TestCleanAlwaysDropsMetadata(t *testing.T) {
	tests := []struct {
		msg   string
		extra []string
		cols  []string
	}{
		{"no extra columns", nil,
			[]string{"freq", "unit", "citizen", "sex", "age", "geo", "TIME_PERIOD", "OBS_VALUE"}},
		{"extra column", []string{"unit"},
			[]string{"freq", "citizen", "sex", "age", "geo", "TIME_PERIOD", "OBS_VALUE"}},
		{"extra repeats defaults", []string{"obs_flag", "freq"},
			[]string{"unit", "citizen", "sex", "age", "geo", "TIME_PERIOD", "OBS_VALUE"}},
	}

	for _, v := range tests {
		res, err := dashboard.Clean(rawTable(), v.extra)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.cols, res.Cleaned.Columns(), v.msg)
		assert.Contains(t, res.DroppedColumns, "OBS_FLAG", v.msg)
		assert.Contains(t, res.DroppedColumns, "CONF_STATUS", v.msg)
	}
}

func TestCleanNeedsCitizen(t *testing.T) {
	tbl := table.New([]string{"geo"}, [][]string{{"EL"}})
	_, err := dashboard.Clean(tbl, nil)
	require.Error(t, err)
	assert.Equal(t, errcode.SchemaError, err.(*gn.Error).Code)
}

func TestCleanIdempotent(t *testing.T) {
	first, err := dashboard.Clean(rawTable(), dashboard.DefaultDropColumns)
	require.NoError(t, err)
	second, err := dashboard.Clean(first.Cleaned, dashboard.DefaultDropColumns)
	require.NoError(t, err)

	assert.Equal(t, 0, second.Removed)
	assert.Nil(t, second.DroppedColumns)
	assert.Equal(t, first.Cleaned.Columns(), second.Cleaned.Columns())
	assert.Equal(t, first.Cleaned.Rows(), second.Cleaned.Rows())
	assert.Equal(t, first.Duplicates, second.Duplicates)
}

func TestTimeSeries(t *testing.T) {
	tbl := cleaned(t)
	ts, err := dashboard.TimeSeriesOf(tbl)
	require.NoError(t, err)

	assert.Equal(t, []dashboard.Point{
		{Period: "2022-03", Value: 23},
		{Period: "2022-04", Value: 20},
		{Period: "2022-05", Value: 7},
	}, ts.Points)
	assert.Equal(t, "2022-03", ts.Start)
	assert.Equal(t, "2022-05", ts.End)
	assert.Equal(t, sumValues(t, tbl), ts.Total(), "nothing is lost")
}

func TestTimeSeriesErrors(t *testing.T) {
	tbl := table.New([]string{"citizen", "TIME_PERIOD"}, [][]string{{"UA", "2022-01"}})
	_, err := dashboard.TimeSeriesOf(tbl)
	require.Error(t, err)
	assert.Equal(t, errcode.SchemaError, err.(*gn.Error).Code)

	tbl = table.New(
		[]string{"citizen", "TIME_PERIOD", "OBS_VALUE"},
		[][]string{{"UA", "2022-01", "ten"}},
	)
	_, err = dashboard.TimeSeriesOf(tbl)
	require.Error(t, err)
	assert.Equal(t, errcode.ObsValueError, err.(*gn.Error).Code)
}

func TestCitizenMap(t *testing.T) {
	ref := reference.Default()
	m, err := dashboard.CitizenMapOf(cleaned(t), ref)
	require.NoError(t, err)

	require.Len(t, m.Points, 3, "SY is not eligible")
	assert.Equal(t, "AD", m.Points[0].Citizen)
	assert.Equal(t, "IS", m.Points[1].Citizen)
	assert.Equal(t, "UA", m.Points[2].Citizen)

	ua := m.Points[2]
	assert.Equal(t, 3, ua.Count)
	assert.InDelta(t, 0.03, ua.Radius, 1e-12)
	for _, v := range m.Points {
		assert.Equal(t, float64(v.Count), v.RadiusScaled, v.Citizen)
	}

	is := m.Points[1]
	assert.False(t, is.HasCoordinate(), "unmapped code is kept")
	assert.Equal(t, 1, is.Count)

	plottable := m.Plottable()
	assert.Len(t, plottable, 2)

	lat, lon, ok := m.Center()
	require.True(t, ok)
	adLat, adLon := ref.Coordinate("AD")
	uaLat, uaLon := ref.Coordinate("UA")
	assert.InDelta(t, (*adLat+*uaLat)/2, lat, 1e-9)
	assert.InDelta(t, (*adLon+*uaLon)/2, lon, 1e-9)

	assert.Equal(t,
		"UA\nNumber of people (request protection): 3", ua.Tooltip())
}

func TestRadiusScaledIdentity(t *testing.T) {
	ref, err := reference.New([]reference.GeoEntry{{Code: "XX"}}, nil)
	require.NoError(t, err)

	for _, n := range []int{1, 3, 7, 29, 57, 99, 101, 1013, 123457} {
		rows := make([][]string, n)
		for i := range rows {
			rows[i] = []string{"XX"}
		}
		m, err := dashboard.CitizenMapOf(table.New([]string{"citizen"}, rows), ref)
		require.NoError(t, err)
		require.Len(t, m.Points, 1)
		assert.Equal(t, float64(n), m.Points[0].RadiusScaled, n)
	}
}

func TestCitizenMapEmpty(t *testing.T) {
	m, err := dashboard.CitizenMapOf(
		table.New([]string{"citizen"}, nil), reference.Default())
	require.NoError(t, err)
	assert.Empty(t, m.Points)
	_, _, ok := m.Center()
	assert.False(t, ok)
}

func TestGeoSex(t *testing.T) {
	tbl := cleaned(t)
	gs, err := dashboard.GeoSexOf(tbl, dashboard.DefaultSentinels)
	require.NoError(t, err)

	assert.Equal(t, []dashboard.GeoSexValue{
		{Geo: "EL", Sex: "M", Value: 20},
		{Geo: "PL", Sex: "F", Value: 23},
	}, gs.Values)
	assert.Equal(t, 2, gs.ExcludedRows)
	assert.Equal(t, 7.0, gs.ExcludedValue)
	assert.Equal(t, sumValues(t, tbl)-gs.ExcludedValue, gs.Total())

	assert.Equal(t, []string{"EL", "PL"}, gs.Geos())
	assert.Equal(t, []string{"F", "M"}, gs.Sexes())
	assert.Equal(t, 23.0, gs.Value("PL", "F"))
	assert.Equal(t, 0.0, gs.Value("PL", "M"))
	assert.Equal(t, []dashboard.GeoTotal{
		{Geo: "EL", Value: 20},
		{Geo: "PL", Value: 23},
	}, gs.Totals())

	for _, v := range gs.Values {
		assert.NotContains(t, dashboard.DefaultSentinels.Geo, v.Geo)
		assert.NotContains(t, dashboard.DefaultSentinels.Sex, v.Sex)
	}
}

func TestGeoSexCustomSentinels(t *testing.T) {
	gs, err := dashboard.GeoSexOf(cleaned(t), dashboard.Sentinels{Geo: []string{"EL"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"PL", "UNK"}, gs.Geos(), "UNK is no longer a sentinel")
	assert.Equal(t, 30.0, gs.Value("PL", "UNK")+gs.Value("PL", "F"))
	assert.Equal(t, 2, gs.ExcludedRows, "two EL rows")
}

func TestScenarioTwoRows(t *testing.T) {
	raw := table.New(
		[]string{"TIME_PERIOD", "citizen", "geo", "sex", "OBS_VALUE"},
		[][]string{
			{"2022-01", "UA", "EL", "M", "10"},
			{"2022-01", "", "EL", "F", "5"},
		},
	)
	res, err := dashboard.Clean(raw, dashboard.DefaultDropColumns)
	require.NoError(t, err)
	require.Equal(t, 1, res.Cleaned.Len())
	assert.Equal(t, "UA", res.Cleaned.Row(0)[1])

	ts, err := dashboard.TimeSeriesOf(res.Cleaned)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.Point{{Period: "2022-01", Value: 10}}, ts.Points)

	gs, err := dashboard.GeoSexOf(res.Cleaned, dashboard.DefaultSentinels)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.GeoSexValue{{Geo: "EL", Sex: "M", Value: 10}}, gs.Values)
}

func TestScenarioEmpty(t *testing.T) {
	for _, raw := range []*table.Table{
		table.New(nil, nil),
		table.New(header, nil),
	} {
		res, err := dashboard.Clean(raw, dashboard.DefaultDropColumns)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Cleaned.Len())
		assert.Zero(t, res.Removed)
		assert.False(t, res.Cleaned.Has("OBS_FLAG"))

		d, err := dashboard.Build(context.Background(), res.Cleaned,
			reference.Default(), dashboard.DefaultSentinels)
		require.NoError(t, err)
		assert.Empty(t, d.TimeSeries.Points)
		assert.NotNil(t, d.TimeSeries.Points)
		assert.Empty(t, d.Citizens.Points)
		assert.Empty(t, d.GeoSex.Values)
		assert.Zero(t, d.GeoSex.ExcludedRows)
	}

	raw := table.New(header, nil)
	res, err := dashboard.Clean(raw, dashboard.DefaultDropColumns)
	require.NoError(t, err)

	d, err := dashboard.Build(context.Background(), res.Cleaned,
		reference.Default(), dashboard.DefaultSentinels)
	require.NoError(t, err)
	assert.Empty(t, d.TimeSeries.Points)
	assert.Empty(t, d.TimeSeries.Start)
	assert.Empty(t, d.Citizens.Points)
	assert.Empty(t, d.GeoSex.Values)

	var frames int
	for range d.TimeSeries.Reveal() {
		frames++
	}
	assert.Zero(t, frames)
}

func TestBuild(t *testing.T) {
	d, err := dashboard.Build(context.Background(), cleaned(t),
		reference.Default(), dashboard.DefaultSentinels)
	require.NoError(t, err)
	assert.Equal(t, 3, d.TimeSeries.Len())
	assert.Len(t, d.Citizens.Points, 3)
	assert.Len(t, d.GeoSex.Values, 2)
	assert.Len(t, d.Citizenship, 34)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dashboard.Build(ctx, cleaned(t),
		reference.Default(), dashboard.DefaultSentinels)
	assert.ErrorIs(t, err, context.Canceled)

	bad := table.New([]string{"citizen", "geo", "sex"}, [][]string{{"UA", "EL", "M"}})
	_, err = dashboard.Build(context.Background(), bad,
		reference.Default(), dashboard.DefaultSentinels)
	require.Error(t, err)
}

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/data4safety/d4s/pkg/config"
	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const decisions = `citizen,sex,age,geo,TIME_PERIOD,OBS_VALUE,OBS_FLAG,CONF_STATUS
UA,F,TOTAL,PL,2022-03,20,,
,M,TOTAL,EL,2022-04,5,p,
UA,M,TOTAL,DE,2022-04,7,,
`

func testConfig(t *testing.T, input string) *config.Config {
	home := t.TempDir()
	path := filepath.Join(home, "decisions.csv")
	require.NoError(t, os.WriteFile(path, []byte(input), 0644))

	res := config.New()
	res.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptInputPath(path),
	})
	return res
}

func TestRunPipeline(t *testing.T) {
	c := testConfig(t, decisions)

	p, err := runPipeline(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, 3, p.raw.Len())
	assert.Equal(t, 2, p.cleaning.Cleaned.Len())
	assert.Equal(t, 1, p.cleaning.Removed)
	assert.False(t, p.cleaning.Cleaned.Has("OBS_FLAG"))

	ts := p.dashboard.TimeSeries
	assert.Equal(t, 2, ts.Len())
	assert.Equal(t, 27.0, ts.Total())
	assert.Equal(t, 27.0, p.dashboard.GeoSex.Total())
	assert.NotEmpty(t, p.dashboard.Citizenship,
		"embedded reference is used without reference.yaml")
}

func TestRunPipelineEmptyFile(t *testing.T) {
	tests := []struct {
		msg, input string
	}{
		{"zero-byte file", ""},
		{"header only", "citizen,sex,geo,TIME_PERIOD,OBS_VALUE,OBS_FLAG\n"},
	}

	for _, v := range tests {
		c := testConfig(t, v.input)

		p, err := runPipeline(context.Background(), c)
		require.NoError(t, err, v.msg)
		assert.Equal(t, 0, p.cleaning.Cleaned.Len(), v.msg)
		assert.False(t, p.cleaning.Cleaned.Has("OBS_FLAG"), v.msg)
		assert.Zero(t, p.dashboard.TimeSeries.Len(), v.msg)
		assert.Empty(t, p.dashboard.Citizens.Points, v.msg)
		assert.Empty(t, p.dashboard.GeoSex.Values, v.msg)
	}
}

func TestRunPipelineExtraDropColumns(t *testing.T) {
	c := testConfig(t, decisions)
	c.Update([]config.Option{config.OptCleanDropColumns([]string{"age"})})

	p, err := runPipeline(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"citizen", "sex", "geo", "TIME_PERIOD", "OBS_VALUE"},
		p.cleaning.Cleaned.Columns(),
	)
}

func TestRunPipelineMissingFile(t *testing.T) {
	c := testConfig(t, decisions)
	c.Update([]config.Option{
		config.OptInputPath(filepath.Join(c.HomeDir, "absent.csv")),
	})

	_, err := runPipeline(context.Background(), c)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DataLoadError, gnErr.Code)
}

func TestRunPipelineNoCitizen(t *testing.T) {
	c := testConfig(t, "geo,TIME_PERIOD,OBS_VALUE\nPL,2022-03,1\n")

	_, err := runPipeline(context.Background(), c)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SchemaError, gnErr.Code)
}

func TestFlagOptions(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("port", 0, "")
	cmd.Flags().String("host", "", "")

	c := config.New()
	port, host := c.Server.Port, c.Server.Host

	assert.Nil(t, intFlag(cmd, "port", config.OptServerPort),
		"unchanged flags give no options")
	assert.Nil(t, stringFlag(cmd, "host", config.OptServerHost))

	require.NoError(t, cmd.Flags().Set("port", "9999"))
	require.NoError(t, cmd.Flags().Set("host", "0.0.0.0"))
	c.Update(intFlag(cmd, "port", config.OptServerPort))
	c.Update(stringFlag(cmd, "host", config.OptServerHost))
	assert.NotEqual(t, port, c.Server.Port)
	assert.NotEqual(t, host, c.Server.Host)
	assert.Equal(t, 9999, c.Server.Port)
	assert.Equal(t, "0.0.0.0", c.Server.Host)
}

func TestRevealDelay(t *testing.T) {
	c := config.New()
	c.Update([]config.Option{config.OptDashboardRevealDelayMs(25)})
	assert.Equal(t, "25ms", revealDelay(c).String())
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCommandFlags verifies flags of every subcommand.
func TestCommandFlags(t *testing.T) {
	tests := []struct {
		cmd       *cobra.Command
		flag      string
		shorthand string
		defValue  string
	}{
		{getCleanCmd(), "preview", "p", "0"},
		{getDashboardCmd(), "delay", "d", "0"},
		{getChartsCmd(), "output", "o", ""},
		{getServeCmd(), "host", "", ""},
		{getServeCmd(), "port", "p", "0"},
		{getExportCmd(), "format", "f", ""},
		{getExportCmd(), "output", "o", "d4s.xlsx"},
		{getPublishCmd(), "batch-size", "b", "0"},
	}

	for _, v := range tests {
		msg := v.cmd.Name() + " --" + v.flag
		flag := v.cmd.Flags().Lookup(v.flag)
		require.NotNil(t, flag, msg)
		assert.Equal(t, v.shorthand, flag.Shorthand, msg)
		assert.Equal(t, v.defValue, flag.DefValue, msg)
	}
}

// TestCommandHelpText verifies long descriptions.
func TestCommandHelpText(t *testing.T) {
	tests := []struct {
		cmd      *cobra.Command
		contains []string
	}{
		{getCleanCmd(), []string{"OBS_FLAG", "CONF_STATUS", "never modified"}},
		{getDashboardCmd(), []string{"reveal_delay_ms", "Ctrl-C"}},
		{getChartsCmd(), []string{"timeseries.png", "citizens.png", "geosex.png"}},
		{getServeCmd(), []string{"/api/timeseries", "/ws/reveal", "/metrics"}},
		{getExportCmd(), []string{"xlsx", "sqlite", "json"}},
		{getPublishCmd(), []string{"GORM AutoMigrate", "one transaction"}},
	}

	for _, v := range tests {
		buf := new(bytes.Buffer)
		v.cmd.SetOut(buf)
		v.cmd.SetArgs([]string{"--help"})

		err := v.cmd.Execute()
		require.NoError(t, err, v.cmd.Name())

		for _, s := range v.contains {
			assert.Contains(t, buf.String(), s, v.cmd.Name())
		}
	}
}

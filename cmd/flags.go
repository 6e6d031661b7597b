package cmd

import (
	"github.com/data4safety/d4s/pkg/config"
	"github.com/spf13/cobra"
)

// intFlag converts an explicitly set integer flag to a config option.
// Flags left at their defaults do not override config.yaml.
func intFlag(
	cmd *cobra.Command,
	name string,
	opt func(int) config.Option,
) []config.Option {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	i, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}
	return []config.Option{opt(i)}
}

// stringFlag converts an explicitly set string flag to a config option.
func stringFlag(
	cmd *cobra.Command,
	name string,
	opt func(string) config.Option,
) []config.Option {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return []config.Option{opt(s)}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/fastblur/internal/config"
)

func newPresetsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the available blur presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := loadPresets(configPath)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSIGMA\tPASSES\tEDGE\tPARALLEL")
			for _, p := range presets.Presets {
				edge := p.Edge
				if edge == "" {
					edge = "extend"
				}
				fmt.Fprintf(tw, "%s\t%g\t%d\t%s\t%t\n", p.Name, p.Sigma, p.EffectivePasses(), edge, p.Parallel)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Preset file (YAML or TOML) merged over the built-ins")

	return cmd
}

// loadPresets returns the built-in presets, overridden by those in path
// when path is set.
func loadPresets(path string) (*config.File, error) {
	presets := config.Builtin()
	if path == "" {
		return presets, nil
	}
	user, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	return presets.Merge(user), nil
}

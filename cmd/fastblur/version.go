package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/fastblur"
)

var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "fastblur %s\ncommit: %s\nbuilt: %s\n", fastblur.Version, commit, date)
			return nil
		},
	}
}

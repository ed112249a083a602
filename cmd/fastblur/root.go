package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/fastblur"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fastblur",
		Short:         "Fast Gaussian blur approximation for images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				fastblur.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			fastblur.SetLogger(nil)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log blur diagnostics to stderr")

	cmd.AddCommand(newBlurCmd())
	cmd.AddCommand(newShadowCmd())
	cmd.AddCommand(newRadiiCmd())
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

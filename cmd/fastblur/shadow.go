package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/fastblur"
)

type shadowOptions struct {
	dx, dy int
	sigma  float64
	passes int
	color  string
}

func newShadowCmd() *cobra.Command {
	opts := &shadowOptions{}

	cmd := &cobra.Command{
		Use:   "shadow <in> <out>",
		Short: "Render an image over a blurred drop shadow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShadow(cmd, opts, args[0], args[1])
		},
	}

	def := fastblur.DefaultShadowOptions()
	cmd.Flags().IntVar(&opts.dx, "dx", def.OffsetX, "Horizontal shadow offset in pixels")
	cmd.Flags().IntVar(&opts.dy, "dy", def.OffsetY, "Vertical shadow offset in pixels")
	cmd.Flags().Float64VarP(&opts.sigma, "sigma", "s", def.Sigma, "Shadow blur standard deviation")
	cmd.Flags().IntVarP(&opts.passes, "passes", "p", fastblur.DefaultPasses, "Number of box passes (1..10)")
	cmd.Flags().StringVar(&opts.color, "color", "#00000080", "Shadow color as hex RGB, RGBA, RRGGBB or RRGGBBAA")

	return cmd
}

func runShadow(cmd *cobra.Command, opts *shadowOptions, in, out string) error {
	c, err := fastblur.ParseHex(opts.color)
	if err != nil {
		return err
	}

	src, err := fastblur.LoadPixmap(in, fastblur.FormatRGBA8)
	if err != nil {
		return err
	}

	dst, err := fastblur.DropShadow(src, fastblur.ShadowOptions{
		OffsetX: opts.dx,
		OffsetY: opts.dy,
		Sigma:   opts.sigma,
		Color:   c,
		Passes:  opts.passes,
	})
	if err != nil {
		return err
	}
	if err := dst.Save(out); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, dst.Width(), dst.Height())
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fastblur"
)

func newRadiiCmd() *cobra.Command {
	var (
		sigma  float64
		passes int
	)

	cmd := &cobra.Command{
		Use:   "radii",
		Short: "Print the box radii used to approximate a Gaussian",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			radii, err := fastblur.BoxRadii(sigma, passes)
			if err != nil {
				return err
			}
			p := message.NewPrinter(language.English)
			p.Fprintf(cmd.OutOrStdout(), "sigma: %.3f\npasses: %d\nradii: %v\neffective sigma: %.3f\n",
				sigma, passes, radii, fastblur.EffectiveSigma(radii))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&sigma, "sigma", "s", 4, "Gaussian standard deviation")
	cmd.Flags().IntVarP(&passes, "passes", "p", fastblur.DefaultPasses, fmt.Sprintf("Number of box passes (1..%d)", fastblur.MaxPasses))

	return cmd
}

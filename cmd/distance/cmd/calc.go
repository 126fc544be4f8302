package cmd

import (
	"fmt"

	"github.com/corey/distance/internal/domain/geometry"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:     "calc [x] [y] [z]",
	Short:   "Compute a distance locally",
	Long:    "Computes the distance of (x, y, z) from the origin without a server. Missing coordinates are 0.",
	Example: "  distance calc 3 4 0\n  distance calc -3 -4",
	RunE:    runCalc,

	DisableFlagParsing: true,
}

func runCalc(cmd *cobra.Command, args []string) error {
	parsed, err := splitCoordArgs(args, false)
	if err != nil {
		return err
	}
	if parsed.help {
		return cmd.Help()
	}

	raw := parsed.coords
	p, err := geometry.ParsePoint(raw[0], raw[1], raw[2])
	if err != nil {
		return err
	}
	d, err := geometry.Distance(p)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatDistance(pointLabels(p), d, useColor()))
	return nil
}

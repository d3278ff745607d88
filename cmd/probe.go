package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/potential/internal/domain"
)

// probeCmd represents the probe command.
var probeCmd = newProbeCmd()

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe scenario x y",
		Short: "Evaluate a scenario at a single point",
		Long: `Print the velocity, stream function and speed of a scenario at the point (x, y).

Negative coordinates must follow "--", for example: potential probe rankine -- 0.5 -0.25`,
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			x, y, err := parsePoint(args[1], args[2])
			if err != nil {
				return err
			}

			return workflow.Probe(c.Context(), domain.ProbeArgs{
				SourceArgs: sourceArgs(),
				Name:       args[0],
				X:          x,
				Y:          y,
			})
		},
	}

	return cmd
}

func parsePoint(xs, ys string) (float64, float64, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q: %w", xs, err)
	}

	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q: %w", ys, err)
	}

	return x, y, nil
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

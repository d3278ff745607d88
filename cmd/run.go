package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/potential/internal/domain"
	m "github.com/mouse-blink/potential/internal/model"
)

var runOutputFlag string
var runFormatFlag string
var runExportFlag bool
var runParallelFlag int

const runLongDescription = `Evaluate and render the named scenarios, in the order given.

Every name is checked before anything is evaluated: an unknown name fails the
whole run. Each scenario is written to <output>/<name>.<format>; with --export
the sampled field is also written to <output>/<name>.dat as "x y u v psi"
columns.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run scenario [scenario...]",
		Short: "Evaluate and render scenarios",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Run(c.Context(), domain.RunArgs{
				SourceArgs: sourceArgs(),
				Names:      args,
				Output:     m.Path(cfg.OutputDir),
				Format:     cfg.Format,
				Width:      cfg.Width,
				Height:     cfg.Height,
				Export:     cfg.Export,
				Workers:    cfg.Workers,
			})
		},
	}
	cmd.Flags().StringVarP(&runOutputFlag, "output", "o", "", "output directory (default \"plots\")")
	cmd.Flags().StringVar(&runFormatFlag, "format", "", "figure format: png, svg or pdf (default \"png\")")
	cmd.Flags().BoolVar(&runExportFlag, "export", false, "also write the sampled field as text columns")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 0, "number of grid rows evaluated concurrently (default: number of CPUs)")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

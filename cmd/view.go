package cmd

import (
	"os"

	"github.com/mouse-blink/potential/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultViewCols = 48
	defaultViewRows = 20
)

var viewColsFlag int
var viewRowsFlag int

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [scenario...]",
		Short: "Preview scenario direction fields in the terminal",
		Long:  "Evaluate scenarios on a coarse grid and show the flow direction of every cell. Without arguments all scenarios are shown.",
		RunE: func(c *cobra.Command, args []string) error {
			cols, rows := previewSize(viewColsFlag, viewRowsFlag)

			return workflow.View(c.Context(), domain.ViewArgs{
				SourceArgs: sourceArgs(),
				Names:      args,
				Cols:       cols,
				Rows:       rows,
				Workers:    cfg.Workers,
			})
		},
	}
	cmd.Flags().IntVar(&viewColsFlag, "cols", 0, "preview columns (default: fit the terminal)")
	cmd.Flags().IntVar(&viewRowsFlag, "rows", 0, "preview rows (default: fit the terminal)")

	return cmd
}

// previewSize honours explicit sizes and otherwise fits the preview next to
// the scenario list in the current terminal.
func previewSize(cols, rows int) (int, int) {
	if cols > 0 && rows > 0 {
		return cols, rows
	}

	tc, tr := defaultViewCols, defaultViewRows
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		tc = min(max(width-40, 16), 120)
		tr = min(max(height-14, 8), 60)
	}

	if cols <= 0 {
		cols = tc
	}

	if rows <= 0 {
		rows = tr
	}

	return cols, rows
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

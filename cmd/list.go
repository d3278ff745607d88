package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/potential/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Long:  "List the built-in scenarios and those defined in the scenario file.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return workflow.List(c.Context(), domain.ListArgs{SourceArgs: sourceArgs()})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

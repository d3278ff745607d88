// Package cmd provides the root command and CLI setup for potential.
package cmd

import (
	"context"
	"os"

	"github.com/mouse-blink/potential/internal/adapter"
	"github.com/mouse-blink/potential/internal/config"
	"github.com/mouse-blink/potential/internal/controller"
	"github.com/mouse-blink/potential/internal/domain"
	m "github.com/mouse-blink/potential/internal/model"
	"github.com/spf13/cobra"
)

var catalog domain.Catalog
var scenarioLoader adapter.ScenarioLoader
var renderer adapter.Renderer
var exporter adapter.FieldExporter
var workflow domain.Workflow
var ui controller.UI

// cfg is loaded before any subcommand runs.
var cfg = config.Default()

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	catalog = domain.NewCatalog()
	scenarioLoader = adapter.NewYAMLScenarioLoader()
	renderer = adapter.NewPlotRenderer()
	exporter = adapter.NewTextExporter()
	workflow = domain.NewWorkflow(
		catalog,
		scenarioLoader,
		renderer,
		exporter,
		ui,
	)
}

var configFileFlag string
var verboseFlag bool
var scenarioFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "potential",
		Short: "2D potential flow superposition evaluator",
		Long: `Potential evaluates 2D inviscid, irrotational flow fields built by
superposing point sources, sinks, vortices and doublets on a uniform
freestream, and renders their streamlines.

Built-in scenarios:
  doublet, rankine, simple_freestream, source, vortex, vortex_sheet

Additional scenarios can be defined in a YAML file (--scenario-file).`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			loaded, used, err := config.Load(configFileFlag, c.Flags())
			if err != nil {
				return err
			}

			cfg = loaded

			logger := config.NewLogger(c.ErrOrStderr(), cfg.Verbose)
			if used != "" {
				logger.Debug("using config file", "path", used)
			}

			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			c.SetContext(config.WithLogger(ctx, logger))

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configFileFlag, "config", "", "config file (default: potential.yaml in the working directory)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&scenarioFileFlag, "scenario-file", "f", "", "YAML file with additional scenarios")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func sourceArgs() domain.SourceArgs {
	return domain.SourceArgs{ScenarioFile: m.Path(cfg.ScenarioFile)}
}

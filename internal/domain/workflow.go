// Package domain contains the flow-field model and the workflows the
// command line drives: listing, running, probing and previewing scenarios.
package domain

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/potential/internal/adapter"
	"github.com/mouse-blink/potential/internal/config"
	"github.com/mouse-blink/potential/internal/controller"
	m "github.com/mouse-blink/potential/internal/model"
)

// SourceArgs selects where scenarios come from besides the built-in ones.
type SourceArgs struct {
	ScenarioFile m.Path
}

// ListArgs holds the arguments for listing scenarios.
type ListArgs struct {
	SourceArgs
}

// RunArgs holds the arguments for evaluating and rendering scenarios.
type RunArgs struct {
	SourceArgs
	Names   []string
	Output  m.Path
	Format  string
	Width   float64
	Height  float64
	Export  bool
	Workers int
}

// ProbeArgs holds the arguments for evaluating one scenario at one point.
type ProbeArgs struct {
	SourceArgs
	Name string
	X    float64
	Y    float64
}

// ViewArgs holds the arguments for the terminal preview.
type ViewArgs struct {
	SourceArgs
	Names   []string
	Cols    int
	Rows    int
	Workers int
}

// Workflow defines the operations exposed by the command line.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Run(ctx context.Context, args RunArgs) error
	Probe(ctx context.Context, args ProbeArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	catalog  Catalog
	loader   adapter.ScenarioLoader
	renderer adapter.Renderer
	exporter adapter.FieldExporter
	ui       controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	catalog Catalog,
	loader adapter.ScenarioLoader,
	renderer adapter.Renderer,
	exporter adapter.FieldExporter,
	ui controller.UI,
) Workflow {
	return &workflow{
		catalog:  catalog,
		loader:   loader,
		renderer: renderer,
		exporter: exporter,
		ui:       ui,
	}
}

// List displays every known scenario.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.loadScenarios(ctx, args.SourceArgs); err != nil {
		return err
	}

	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.DisplayScenarios(w.catalog.Scenarios())
}

// Run evaluates and renders each named scenario in order. Every name is
// resolved before the first scenario is evaluated, so an unknown name
// aborts the run without side effects.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	logger := config.GetLogger(ctx)

	if err := w.loadScenarios(ctx, args.SourceArgs); err != nil {
		return err
	}

	scenarios, err := w.catalog.Resolve(args.Names...)
	if err != nil {
		return err
	}

	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	for _, sc := range scenarios {
		logger.Debug("evaluating scenario",
			"scenario", sc.Name,
			"singularities", len(sc.Field.Elements),
			"nx", sc.Field.NX,
			"ny", sc.Field.NY,
		)

		field, err := w.evaluate(ctx, sc.Field, WithWorkers(args.Workers))
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}

		opts := sc.Render
		if args.Width > 0 {
			opts.Width = args.Width
		}

		if args.Height > 0 {
			opts.Height = args.Height
		}

		figure := outputPath(args.Output, sc.Name, args.Format)
		if err := w.renderer.Render(field, opts, figure); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}

		outputs := []m.Path{figure}

		if args.Export {
			data := outputPath(args.Output, sc.Name, "dat")
			if err := w.exporter.Export(field, data); err != nil {
				return fmt.Errorf("scenario %s: %w", sc.Name, err)
			}

			outputs = append(outputs, data)
		}

		summary := Summarize(sc.Name, field)
		if summary.NonFinite > 0 {
			logger.Warn("field has non-finite cells", "scenario", sc.Name, "cells", summary.NonFinite)
		}

		logger.Info("rendered scenario", "scenario", sc.Name, "output", figure)
		w.ui.DisplaySummary(summary, outputs...)
	}

	return nil
}

// Probe evaluates one scenario at a single point.
func (w *workflow) Probe(ctx context.Context, args ProbeArgs) error {
	if err := w.loadScenarios(ctx, args.SourceArgs); err != nil {
		return err
	}

	sc, err := w.catalog.Lookup(args.Name)
	if err != nil {
		return err
	}

	ff, err := NewFlowFieldFromConfig(sc.Field)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayProbe(sc.Name, ff.At(args.X, args.Y))

	return nil
}

// View evaluates the selected scenarios (all when none are named) on a
// coarse grid sized for the terminal and hands them to the UI.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.loadScenarios(ctx, args.SourceArgs); err != nil {
		return err
	}

	scenarios := w.catalog.Scenarios()
	if len(args.Names) > 0 {
		var err error
		if scenarios, err = w.catalog.Resolve(args.Names...); err != nil {
			return err
		}
	}

	previews := make([]controller.Preview, 0, len(scenarios))

	for _, sc := range scenarios {
		cfg := sc.Field
		cfg.NX, cfg.NY = args.Cols, args.Rows

		field, err := w.evaluate(ctx, cfg, WithWorkers(args.Workers))
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}

		previews = append(previews, controller.Preview{
			Scenario: sc,
			Field:    field,
			Summary:  Summarize(sc.Name, field),
		})
	}

	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.DisplayPreview(previews)
}

func (w *workflow) evaluate(ctx context.Context, cfg m.FieldConfig, opts ...FieldOption) (m.Field, error) {
	ff, err := NewFlowFieldFromConfig(cfg, opts...)
	if err != nil {
		return m.Field{}, err
	}

	return ff.Evaluate(ctx)
}

// loadScenarios registers the scenarios of the optional scenario file.
func (w *workflow) loadScenarios(ctx context.Context, args SourceArgs) error {
	if args.ScenarioFile == "" {
		return nil
	}

	scenarios, err := w.loader.Load(args.ScenarioFile)
	if err != nil {
		return err
	}

	for _, sc := range scenarios {
		if err := w.catalog.Add(sc); err != nil {
			return err
		}
	}

	config.GetLogger(ctx).Debug("loaded scenarios", "file", args.ScenarioFile, "count", len(scenarios))

	return nil
}

func outputPath(dir m.Path, name, ext string) m.Path {
	return m.Path(filepath.Join(string(dir), name+"."+ext))
}

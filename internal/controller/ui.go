// Package controller provides the user-facing output of the flow tool:
// plain tables for pipes and a styled, interactive terminal UI for TTYs.
package controller

import (
	m "github.com/mouse-blink/potential/internal/model"
)

// Preview is an evaluated scenario at terminal resolution.
type Preview struct {
	Scenario m.Scenario
	Field    m.Field
	Summary  m.Summary
}

// UI defines how scenario listings, evaluation results and previews are
// presented. Implementations can use different output methods (simple text,
// TUI, etc).
type UI interface {
	Start() error
	Close()
	DisplayScenarios(scenarios []m.Scenario) error
	DisplaySummary(summary m.Summary, outputs ...m.Path)
	DisplayProbe(scenario string, probe m.Probe)
	DisplayPreview(previews []Preview) error
}

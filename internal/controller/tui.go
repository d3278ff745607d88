package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/potential/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// TUI implements UI with lipgloss styling and Bubble Tea for the
// interactive preview.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start initializes the UI.
func (t *TUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
}

// DisplayScenarios prints the catalog as styled cards.
func (t *TUI) DisplayScenarios(scenarios []m.Scenario) error {
	if len(scenarios) == 0 {
		_, err := fmt.Fprintln(t.output, mutedStyle.Render("No scenarios available"))
		return err
	}

	blocks := make([]string, 0, len(scenarios)+1)
	blocks = append(blocks, titleStyle.Render(fmt.Sprintf("Scenarios (%d)", len(scenarios))))

	for _, sc := range scenarios {
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left,
			valueStyle.Bold(true).Render(sc.Name)+"  "+mutedStyle.Render(sc.Description),
			row("singularities", formatElements(sc.Field.Elements)),
			row("freestream", formatFreestream(sc.Field)),
			row("domain", formatRange(sc.Field.XLim)+" x "+formatRange(sc.Field.YLim)),
			row("grid", fmt.Sprintf("%dx%d", sc.Field.NX, sc.Field.NY)),
		))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, blocks...))

	return err
}

// DisplaySummary prints the key figures of an evaluated scenario.
func (t *TUI) DisplaySummary(summary m.Summary, outputs ...m.Path) {
	_, _ = fmt.Fprintln(t.output, borderStyle.Render(summaryView(summary, outputs...)))
}

// DisplayProbe prints the flow at a single point.
func (t *TUI) DisplayProbe(scenario string, probe m.Probe) {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s at (%s, %s)", scenario, formatNumber(probe.X), formatNumber(probe.Y))),
		row("u", formatNumber(probe.U)),
		row("v", formatNumber(probe.V)),
		row("psi", formatNumber(probe.Psi)),
		row("speed", formatNumber(probe.Speed())),
	}

	if !probe.Finite() {
		lines = append(lines, warnStyle.Render("point coincides with a singularity"))
	}

	_, _ = fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// DisplayPreview opens an interactive browser over the previews. A single
// preview is printed directly.
func (t *TUI) DisplayPreview(previews []Preview) error {
	if len(previews) == 0 {
		_, err := fmt.Fprintln(t.output, mutedStyle.Render("Nothing to preview"))
		return err
	}

	if len(previews) == 1 {
		_, err := fmt.Fprintln(t.output, previewPane(previews[0]))
		return err
	}

	options := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}, t.options...)

	program := tea.NewProgram(newPreviewModel(previews), options...)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func summaryView(summary m.Summary, outputs ...m.Path) string {
	lines := []string{
		titleStyle.Render(summary.Scenario),
		row("grid", fmt.Sprintf("%dx%d", summary.Cols, summary.Rows)),
		row("singularities", fmt.Sprintf("%d", summary.Elements)),
		row("speed", formatNumber(summary.MinSpeed)+" .. "+formatNumber(summary.MaxSpeed)),
		row("psi", formatNumber(summary.MinPsi)+" .. "+formatNumber(summary.MaxPsi)),
		row("stagnation", formatStagnation(summary.Stagnation)),
	}

	if summary.NonFinite > 0 {
		lines = append(lines, labelStyle.Render("non-finite cells")+warnStyle.Render(fmt.Sprintf("%d", summary.NonFinite)))
	}

	for _, out := range outputs {
		lines = append(lines, row("output", string(out)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func previewPane(p Preview) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(p.Scenario.Name),
		mutedStyle.Render(p.Scenario.Description),
		"",
		valueStyle.Render(strings.Join(directionField(p.Field), "\n")),
		"",
		summaryView(p.Summary),
	)
}

package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/potential/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text written through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayScenarios prints the scenario catalog as a table.
func (s *SimpleUI) DisplayScenarios(scenarios []m.Scenario) error {
	if len(scenarios) == 0 {
		s.printf("No scenarios available\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, "Name", "Singularities", "Freestream", "X Range", "Y Range", "Grid")
	for _, sc := range scenarios {
		table.Append([]string{
			sc.Name,
			formatElements(sc.Field.Elements),
			formatFreestream(sc.Field),
			formatRange(sc.Field.XLim),
			formatRange(sc.Field.YLim),
			fmt.Sprintf("%dx%d", sc.Field.NX, sc.Field.NY),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(scenarios)), "", "", "", "", ""})
	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplaySummary prints the key figures of an evaluated scenario.
func (s *SimpleUI) DisplaySummary(summary m.Summary, outputs ...m.Path) {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, "Quantity", "Value")
	table.AppendBulk([][]string{
		{"grid", fmt.Sprintf("%dx%d", summary.Cols, summary.Rows)},
		{"singularities", fmt.Sprintf("%d", summary.Elements)},
		{"speed", fmt.Sprintf("%s .. %s", formatNumber(summary.MinSpeed), formatNumber(summary.MaxSpeed))},
		{"psi", fmt.Sprintf("%s .. %s", formatNumber(summary.MinPsi), formatNumber(summary.MaxPsi))},
		{"non-finite cells", fmt.Sprintf("%d", summary.NonFinite)},
		{"stagnation", formatStagnation(summary.Stagnation)},
	})

	for _, out := range outputs {
		table.Append([]string{"output", string(out)})
	}

	table.Render()
	s.printf("%s\n%s", summary.Scenario, tableBuffer.String())
}

// DisplayProbe prints the flow at a single point.
func (s *SimpleUI) DisplayProbe(scenario string, probe m.Probe) {
	s.printf("%s at (%s, %s): u=%s v=%s psi=%s speed=%s\n",
		scenario,
		formatNumber(probe.X), formatNumber(probe.Y),
		formatNumber(probe.U), formatNumber(probe.V),
		formatNumber(probe.Psi), formatNumber(probe.Speed()),
	)
}

// DisplayPreview prints the direction field of every preview.
func (s *SimpleUI) DisplayPreview(previews []Preview) error {
	for _, p := range previews {
		s.printf("%s: %s\n%s\n\n", p.Scenario.Name, p.Scenario.Description,
			strings.Join(directionField(p.Field), "\n"))
	}

	return nil
}

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

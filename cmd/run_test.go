package cmd

import (
	"runtime"
	"testing"

	"github.com/mouse-blink/potential/internal/domain"
	m "github.com/mouse-blink/potential/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newRunCmd())

	mockWorkflow.On("Run", mock.Anything, domain.RunArgs{
		Names:   []string{"rankine"},
		Output:  m.Path("plots"),
		Format:  "png",
		Width:   6,
		Height:  6,
		Workers: runtime.NumCPU(),
	}).Return(nil).Once()

	cmd.SetArgs([]string{"run", "rankine"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_Flags(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newRunCmd())

	mockWorkflow.On("Run", mock.Anything, domain.RunArgs{
		SourceArgs: domain.SourceArgs{ScenarioFile: m.Path("extra.yaml")},
		Names:      []string{"source", "vortex", "doublet"},
		Output:     m.Path("figures"),
		Format:     "svg",
		Width:      6,
		Height:     6,
		Export:     true,
		Workers:    2,
	}).Return(nil).Once()

	cmd.SetArgs([]string{
		"run",
		"-o", "figures",
		"--format", "SVG",
		"--export",
		"--parallel", "2",
		"--scenario-file", "extra.yaml",
		"source", "vortex", "doublet",
	})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_EnvironmentSize(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newRunCmd())
	t.Setenv("POTENTIAL_WIDTH", "8")
	t.Setenv("POTENTIAL_HEIGHT", "4.5")

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Width == 8 && args.Height == 4.5
	})).Return(nil).Once()

	cmd.SetArgs([]string{"run", "vortex_sheet"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_RequiresScenario(t *testing.T) {
	cmd, _, _ := newTestRootCmd(t, newRunCmd())

	cmd.SetArgs([]string{"run"})
	assert.Error(t, cmd.Execute())
}

func TestRunCmd_UnknownScenario(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newRunCmd())

	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(domain.ErrUnknownScenario).Once()

	cmd.SetArgs([]string{"run", "cylinder"})
	assert.ErrorIs(t, cmd.Execute(), domain.ErrUnknownScenario)
}

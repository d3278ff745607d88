package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mouse-blink/potential/internal/config"
	"github.com/mouse-blink/potential/internal/domain"
	domainmocks "github.com/mouse-blink/potential/internal/domain/mocks"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestRootCmd builds a fresh command tree wired to a mock workflow.
func newTestRootCmd(t *testing.T, sub ...*cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	return cmd, mockWorkflow, &out
}

func TestRootCmd_Help(t *testing.T) {
	cmd, _, out := newTestRootCmd(t, newRunCmd(), newListCmd())

	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	for _, want := range []string{"potential", "doublet", "vortex_sheet", "run", "list", "--scenario-file"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRootCmd_VerboseLogger(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newListCmd())

	mockWorkflow.On("List", mock.MatchedBy(func(ctx context.Context) bool {
		return config.GetLogger(ctx).Enabled(ctx, slog.LevelDebug)
	}), domain.ListArgs{}).Return(nil).Once()

	cmd.SetArgs([]string{"list", "--verbose"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_QuietLogger(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newListCmd())

	mockWorkflow.On("List", mock.MatchedBy(func(ctx context.Context) bool {
		logger := config.GetLogger(ctx)
		return !logger.Enabled(ctx, slog.LevelDebug) && logger.Enabled(ctx, slog.LevelWarn)
	}), domain.ListArgs{}).Return(nil).Once()

	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidConfiguration(t *testing.T) {
	cmd, _, _ := newTestRootCmd(t, newRunCmd())
	t.Setenv("POTENTIAL_FORMAT", "bmp")

	cmd.SetArgs([]string{"run", "source"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	cmd, _, _ := newTestRootCmd(t, newListCmd())

	cmd.SetArgs([]string{"list", "--config", "does-not-exist.yaml"})
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_WorkflowError(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newListCmd())
	listErr := errors.New("boom")

	mockWorkflow.On("List", mock.Anything, mock.Anything).Return(listErr).Once()

	cmd.SetArgs([]string{"list"})
	assert.ErrorIs(t, cmd.Execute(), listErr)
}

package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewModel_Selection(t *testing.T) {
	model := newPreviewModel([]Preview{testPreview("first"), testPreview("second")})
	assert.Nil(t, model.Init())

	p, ok := model.selected()
	require.True(t, ok)
	assert.Equal(t, "first", p.Scenario.Name)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(previewModel)

	p, ok = model.selected()
	require.True(t, ok)
	assert.Equal(t, "second", p.Scenario.Name)
	assert.Contains(t, model.View(), "second flow")
}

func TestPreviewModel_WindowSize(t *testing.T) {
	model := newPreviewModel([]Preview{testPreview("first")})

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(previewModel)

	assert.Nil(t, cmd)
	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}

func TestPreviewModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			model := newPreviewModel([]Preview{testPreview("first")})

			_, cmd := model.Update(key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestPreviewModel_Empty(t *testing.T) {
	model := newPreviewModel(nil)

	_, ok := model.selected()
	assert.False(t, ok)
	assert.Contains(t, model.View(), "No scenario selected")
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"vortex_sheet", 20, "vortex_sheet"},
		{"vortex_sheet", 7, "vortex…"},
		{"vortex_sheet", 1, "…"},
		{"vortex_sheet", 0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateToWidth(tt.text, tt.width))
	}
}

package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const listPaneWidth = 28

// scenarioItem is one entry of the preview list.
type scenarioItem struct {
	name  string
	index int
}

func (s scenarioItem) FilterValue() string {
	return s.name
}

type scenarioDelegate struct{}

func (d scenarioDelegate) Height() int  { return 1 }
func (d scenarioDelegate) Spacing() int { return 0 }
func (d scenarioDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d scenarioDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	sc, ok := item.(scenarioItem)
	if !ok {
		return
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if index == l.Index() {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	_, _ = fmt.Fprint(w, style.Render(truncateToWidth(sc.name, l.Width())))
}

// previewModel lists the scenarios on the left and shows the direction
// field of the selected one on the right.
type previewModel struct {
	width    int
	height   int
	list     list.Model
	previews []Preview
}

func newPreviewModel(previews []Preview) previewModel {
	items := make([]list.Item, 0, len(previews))
	for i, p := range previews {
		items = append(items, scenarioItem{name: p.Scenario.Name, index: i})
	}

	l := list.New(items, scenarioDelegate{}, listPaneWidth, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = "Filter by name…"

	return previewModel{list: l, previews: previews}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetHeight(max(msg.Height-4, 5))

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// selected returns the preview under the cursor, if any.
func (m previewModel) selected() (Preview, bool) {
	item, ok := m.list.SelectedItem().(scenarioItem)
	if !ok || item.index >= len(m.previews) {
		return Preview{}, false
	}

	return m.previews[item.index], true
}

func (m previewModel) View() string {
	left := borderStyle.Width(listPaneWidth).Render(m.list.View())

	right := mutedStyle.Render("No scenario selected")
	if p, ok := m.selected(); ok {
		right = previewPane(p)
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		footer,
	)
}

// truncateToWidth shortens text to at most width cells, marking the cut
// with an ellipsis.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

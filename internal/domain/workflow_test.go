package domain

import (
	"errors"
	"path/filepath"
	"testing"

	adaptermocks "github.com/mouse-blink/potential/internal/adapter/mocks"
	"github.com/mouse-blink/potential/internal/controller"
	controllermocks "github.com/mouse-blink/potential/internal/controller/mocks"
	m "github.com/mouse-blink/potential/internal/model"
	"github.com/mouse-blink/potential/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workflowMocks struct {
	loader   *adaptermocks.MockScenarioLoader
	renderer *adaptermocks.MockRenderer
	exporter *adaptermocks.MockFieldExporter
	ui       *controllermocks.MockUI
}

func newTestWorkflow(t *testing.T) (Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		loader:   adaptermocks.NewMockScenarioLoader(t),
		renderer: adaptermocks.NewMockRenderer(t),
		exporter: adaptermocks.NewMockFieldExporter(t),
		ui:       controllermocks.NewMockUI(t),
	}

	wf := NewWorkflow(NewCatalog(), mocks.loader, mocks.renderer, mocks.exporter, mocks.ui)

	return wf, mocks
}

func (mk workflowMocks) expectSession() {
	mk.ui.On("Start").Return(nil).Once()
	mk.ui.On("Close").Return().Once()
}

func fieldOfSize(rows, cols int) interface{} {
	return mock.MatchedBy(func(f m.Field) bool {
		r, c := f.Dims()
		return r == rows && c == cols && f.U != nil && f.Psi != nil
	})
}

func TestWorkflow_List(t *testing.T) {
	t.Run("displays the built-in scenarios", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		mk.expectSession()
		mk.ui.On("DisplayScenarios", mock.MatchedBy(func(s []m.Scenario) bool {
			return len(s) == 6 && s[0].Name == "doublet"
		})).Return(nil).Once()

		err := wf.List(testutil.NewTestContext(t), ListArgs{})
		require.NoError(t, err)
	})

	t.Run("includes scenarios from the scenario file", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		extra := scenario("pair", "vortex pair", unit(m.KindVortex, 0, 0, 1))

		mk.loader.On("Load", m.Path("extra.yaml")).Return([]m.Scenario{extra}, nil).Once()
		mk.expectSession()
		mk.ui.On("DisplayScenarios", mock.MatchedBy(func(s []m.Scenario) bool {
			for _, sc := range s {
				if sc.Name == "pair" {
					return len(s) == 7
				}
			}

			return false
		})).Return(nil).Once()

		err := wf.List(testutil.NewTestContext(t), ListArgs{SourceArgs: SourceArgs{ScenarioFile: "extra.yaml"}})
		require.NoError(t, err)
	})

	t.Run("propagates scenario file errors", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		loadErr := errors.New("no such file")
		mk.loader.On("Load", m.Path("missing.yaml")).Return(nil, loadErr).Once()

		err := wf.List(testutil.NewTestContext(t), ListArgs{SourceArgs: SourceArgs{ScenarioFile: "missing.yaml"}})
		assert.ErrorIs(t, err, loadErr)
	})

	t.Run("rejects invalid scenarios from the file", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		bad := scenario("bad", "zero grid")
		bad.Field.NX = 0
		mk.loader.On("Load", m.Path("bad.yaml")).Return([]m.Scenario{bad}, nil).Once()

		err := wf.List(testutil.NewTestContext(t), ListArgs{SourceArgs: SourceArgs{ScenarioFile: "bad.yaml"}})
		assert.ErrorIs(t, err, m.ErrInvalidConfig)
	})
}

func TestWorkflow_Run(t *testing.T) {
	t.Run("renders every named scenario in order", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		out := t.TempDir()
		sourcePNG := m.Path(filepath.Join(out, "source.png"))
		vortexPNG := m.Path(filepath.Join(out, "vortex.png"))

		var order []m.Path

		mk.expectSession()
		mk.renderer.On("Render", fieldOfSize(100, 100), mock.Anything, sourcePNG).
			Run(func(args mock.Arguments) { order = append(order, args.Get(2).(m.Path)) }).
			Return(nil).Once()
		mk.renderer.On("Render", fieldOfSize(100, 100), mock.Anything, vortexPNG).
			Run(func(args mock.Arguments) { order = append(order, args.Get(2).(m.Path)) }).
			Return(nil).Once()
		mk.ui.On("DisplaySummary", mock.MatchedBy(func(s m.Summary) bool { return s.Scenario == "source" }), sourcePNG).Return().Once()
		mk.ui.On("DisplaySummary", mock.MatchedBy(func(s m.Summary) bool { return s.Scenario == "vortex" }), vortexPNG).Return().Once()

		err := wf.Run(testutil.NewTestContext(t), RunArgs{
			Names:   []string{"source", "vortex"},
			Output:  m.Path(out),
			Format:  "png",
			Workers: 2,
		})
		require.NoError(t, err)

		assert.Equal(t, []m.Path{sourcePNG, vortexPNG}, order)
	})

	t.Run("unknown name fails before anything runs", func(t *testing.T) {
		wf, _ := newTestWorkflow(t)

		err := wf.Run(testutil.NewTestContext(t), RunArgs{
			Names:  []string{"source", "cylinder"},
			Output: m.Path(t.TempDir()),
			Format: "png",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownScenario)
		assert.Contains(t, err.Error(), "cylinder")
	})

	t.Run("overrides the figure size", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		out := t.TempDir()

		mk.expectSession()
		mk.renderer.On("Render", mock.Anything, mock.MatchedBy(func(o m.RenderOptions) bool {
			return o.Width == 4 && o.Height == 3 && o.Title == "rankine"
		}), m.Path(filepath.Join(out, "rankine.svg"))).Return(nil).Once()
		mk.ui.On("DisplaySummary", mock.Anything, mock.Anything).Return().Once()

		err := wf.Run(testutil.NewTestContext(t), RunArgs{
			Names:  []string{"rankine"},
			Output: m.Path(out),
			Format: "svg",
			Width:  4,
			Height: 3,
		})
		require.NoError(t, err)
	})

	t.Run("exports the field data", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		out := t.TempDir()
		figure := m.Path(filepath.Join(out, "doublet.pdf"))
		data := m.Path(filepath.Join(out, "doublet.dat"))

		mk.expectSession()
		mk.renderer.On("Render", fieldOfSize(300, 300), mock.Anything, figure).Return(nil).Once()
		mk.exporter.On("Export", fieldOfSize(300, 300), data).Return(nil).Once()
		mk.ui.On("DisplaySummary", mock.Anything, figure, data).Return().Once()

		err := wf.Run(testutil.NewTestContext(t), RunArgs{
			Names:  []string{"doublet"},
			Output: m.Path(out),
			Format: "pdf",
			Export: true,
		})
		require.NoError(t, err)
	})

	t.Run("stops at the first render error", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		out := t.TempDir()
		renderErr := errors.New("disk full")

		mk.expectSession()
		mk.renderer.On("Render", mock.Anything, mock.Anything, m.Path(filepath.Join(out, "source.png"))).Return(renderErr).Once()

		err := wf.Run(testutil.NewTestContext(t), RunArgs{
			Names:  []string{"source", "vortex"},
			Output: m.Path(out),
			Format: "png",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, renderErr)
		assert.Contains(t, err.Error(), "scenario source")
	})

	t.Run("stops when the UI cannot start", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)
		startErr := errors.New("no terminal")
		mk.ui.On("Start").Return(startErr).Once()

		err := wf.Run(testutil.NewTestContext(t), RunArgs{
			Names:  []string{"source"},
			Output: m.Path(t.TempDir()),
			Format: "png",
		})
		assert.ErrorIs(t, err, startErr)
	})
}

func TestWorkflow_Probe(t *testing.T) {
	t.Run("evaluates the scenario at the point", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)

		mk.expectSession()
		mk.ui.On("DisplayProbe", "simple_freestream", mock.MatchedBy(func(p m.Probe) bool {
			// Far upstream on the axis the source slows the stream and the sink speeds it up.
			return p.X == -1 && p.Y == 0 && p.Finite() && p.U > 0 && p.U < 1 && p.V == 0
		})).Return().Once()

		err := wf.Probe(testutil.NewTestContext(t), ProbeArgs{Name: "simple_freestream", X: -1, Y: 0})
		require.NoError(t, err)
	})

	t.Run("singular point is reported, not rejected", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)

		mk.expectSession()
		mk.ui.On("DisplayProbe", "source", mock.MatchedBy(func(p m.Probe) bool {
			return !p.Finite()
		})).Return().Once()

		err := wf.Probe(testutil.NewTestContext(t), ProbeArgs{Name: "source"})
		require.NoError(t, err)
	})

	t.Run("unknown scenario", func(t *testing.T) {
		wf, _ := newTestWorkflow(t)

		err := wf.Probe(testutil.NewTestContext(t), ProbeArgs{Name: "wing"})
		assert.ErrorIs(t, err, ErrUnknownScenario)
	})
}

func TestWorkflow_View(t *testing.T) {
	t.Run("previews every scenario by default", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)

		mk.expectSession()
		mk.ui.On("DisplayPreview", mock.MatchedBy(func(p []controller.Preview) bool {
			if len(p) != 6 {
				return false
			}

			for _, preview := range p {
				rows, cols := preview.Field.Dims()
				if rows != 8 || cols != 12 || preview.Summary.Scenario != preview.Scenario.Name {
					return false
				}
			}

			return true
		})).Return(nil).Once()

		err := wf.View(testutil.NewTestContext(t), ViewArgs{Cols: 12, Rows: 8})
		require.NoError(t, err)
	})

	t.Run("previews only the named scenarios", func(t *testing.T) {
		wf, mk := newTestWorkflow(t)

		mk.expectSession()
		mk.ui.On("DisplayPreview", mock.MatchedBy(func(p []controller.Preview) bool {
			return len(p) == 1 && p[0].Scenario.Name == "vortex_sheet"
		})).Return(nil).Once()

		err := wf.View(testutil.NewTestContext(t), ViewArgs{Names: []string{"vortex_sheet"}, Cols: 10, Rows: 10})
		require.NoError(t, err)
	})

	t.Run("rejects a zero-sized preview", func(t *testing.T) {
		wf, _ := newTestWorkflow(t)

		err := wf.View(testutil.NewTestContext(t), ViewArgs{Names: []string{"source"}})
		assert.ErrorIs(t, err, m.ErrInvalidConfig)
	})
}

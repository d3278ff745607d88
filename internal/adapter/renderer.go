package adapter

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/potential/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNothingToRender is returned for a field without velocity samples.
var ErrNothingToRender = errors.New("field has no velocity samples")

var (
	streamColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	divideColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	markerColor = color.RGBA{A: 255}
)

// Renderer draws an evaluated field. Implementations must not modify it.
type Renderer interface {
	// Render writes the figure to out; the file extension selects the format.
	Render(field m.Field, opts m.RenderOptions, out m.Path) error
}

// PlotRenderer renders streamlines, the dividing streamline and singularity
// markers with gonum/plot.
type PlotRenderer struct{}

// NewPlotRenderer creates a PlotRenderer.
func NewPlotRenderer() *PlotRenderer {
	return &PlotRenderer{}
}

// Render implements Renderer.
func (r *PlotRenderer) Render(field m.Field, opts m.RenderOptions, out m.Path) error {
	p, err := r.Plot(field, opts)
	if err != nil {
		return fmt.Errorf("render %s: %w", out, err)
	}

	if dir := filepath.Dir(string(out)); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render %s: %w", out, err)
		}
	}

	width, height := figureSize(field, opts)
	if err := p.Save(width, height, string(out)); err != nil {
		return fmt.Errorf("render %s: %w", out, err)
	}

	return nil
}

// Plot builds the figure without saving it.
func (r *PlotRenderer) Plot(field m.Field, opts m.RenderOptions) (*plot.Plot, error) {
	if field.X == nil || field.U == nil || field.V == nil {
		return nil, ErrNothingToRender
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	if opts.Grid {
		p.Add(plotter.NewGrid())
	}

	if err := addStreamlines(p, field, opts); err != nil {
		return nil, err
	}

	if opts.ShowDivide && field.Psi != nil {
		p.Add(divideContour(field, opts))
	}

	if opts.ShowPoints {
		if err := addMarkers(p, field.Markers); err != nil {
			return nil, err
		}
	}

	p.X.Min, p.X.Max = field.XLim.Min, field.XLim.Max
	p.Y.Min, p.Y.Max = field.YLim.Min, field.YLim.Max

	return p, nil
}

func addStreamlines(p *plot.Plot, field m.Field, opts m.RenderOptions) error {
	width := vg.Points(opts.LineWidth)
	arrow := opts.ArrowSize * 0.025 * math.Min(field.XLim.Span(), field.YLim.Span())

	for _, xys := range newStreamTracer(field, opts.Density).trace() {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}

		line.LineStyle.Width = width
		line.LineStyle.Color = streamColor
		p.Add(line)

		if opts.ArrowStyle == m.ArrowNone || arrow <= 0 {
			continue
		}

		if err := addArrowHead(p, xys, arrow, opts.ArrowStyle, width); err != nil {
			return err
		}
	}

	return nil
}

// addArrowHead marks the direction of a streamline at its midpoint.
func addArrowHead(p *plot.Plot, xys plotter.XYs, size float64, style m.ArrowStyle, width vg.Length) error {
	mid := len(xys) / 2
	if mid < 1 || mid+1 >= len(xys) {
		return nil
	}

	tip := xys[mid]
	dx, dy := xys[mid+1].X-xys[mid-1].X, xys[mid+1].Y-xys[mid-1].Y

	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return nil
	}

	dx, dy = dx/norm, dy/norm

	const spread = 0.45 // half-angle of the head, radians
	cos, sin := math.Cos(spread), math.Sin(spread)

	left := plotter.XY{
		X: tip.X - size*(dx*cos-dy*sin),
		Y: tip.Y - size*(dy*cos+dx*sin),
	}
	right := plotter.XY{
		X: tip.X - size*(dx*cos+dy*sin),
		Y: tip.Y - size*(dy*cos-dx*sin),
	}

	if style == m.ArrowFilled {
		head, err := plotter.NewPolygon(plotter.XYs{left, tip, right})
		if err != nil {
			return err
		}

		head.Color = streamColor
		head.LineStyle.Color = streamColor
		head.LineStyle.Width = width
		p.Add(head)

		return nil
	}

	head, err := plotter.NewLine(plotter.XYs{left, tip, right})
	if err != nil {
		return err
	}

	head.LineStyle.Width = width
	head.LineStyle.Color = streamColor
	p.Add(head)

	return nil
}

func divideContour(field m.Field, opts m.RenderOptions) *plotter.Contour {
	c := colorOr(opts.DivideColor, divideColor)

	contour := plotter.NewContour(psiGrid{field: field}, []float64{0}, solidPalette{c: c})
	contour.LineStyles = []draw.LineStyle{{Color: c, Width: vg.Points(opts.DivideWidth)}}

	return contour
}

func addMarkers(p *plot.Plot, markers []m.Marker) error {
	for _, marker := range markers {
		scatter, err := plotter.NewScatter(plotter.XYs{{X: marker.X, Y: marker.Y}})
		if err != nil {
			return err
		}

		scatter.GlyphStyle.Color = colorOr(marker.Color, markerColor)
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	return nil
}

// figureSize honours the configured size; with equal axis scaling the height
// follows the aspect ratio of the domain.
func figureSize(field m.Field, opts m.RenderOptions) (vg.Length, vg.Length) {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 6
	}

	if height <= 0 {
		height = width
	}

	if opts.Scaled && field.XLim.Span() > 0 {
		aspect := field.YLim.Span() / field.XLim.Span()
		height = math.Min(math.Max(width*aspect, 2), 4*width)
	}

	return vg.Length(width) * vg.Inch, vg.Length(height) * vg.Inch
}

// psiGrid exposes the stream function as a plotter.GridXYZ. Non-finite
// samples are replaced by the mean of their finite neighbours so the
// contour tracer only sees numbers.
type psiGrid struct {
	field m.Field
}

func (g psiGrid) Dims() (int, int) {
	rows, cols := g.field.Dims()

	return cols, rows
}

func (g psiGrid) Z(c, r int) float64 {
	z := g.field.Psi.At(r, c)
	if !math.IsNaN(z) && !math.IsInf(z, 0) {
		return z
	}

	cols, rows := g.Dims()
	sum, n := 0.0, 0

	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nc < 0 || nr >= rows || nc >= cols {
			continue
		}

		if v := g.field.Psi.At(nr, nc); !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
			n++
		}
	}

	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

func (g psiGrid) X(c int) float64 { return g.field.X.At(0, c) }
func (g psiGrid) Y(r int) float64 { return g.field.Y.At(r, 0) }

// solidPalette draws every contour level in one color.
type solidPalette struct {
	c color.Color
}

func (p solidPalette) Colors() []color.Color {
	return []color.Color{p.c}
}

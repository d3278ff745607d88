package adapter

import (
	"math"

	m "github.com/mouse-blink/potential/internal/model"
	"gonum.org/v1/plot/plotter"
)

const (
	seedsPerDensity = 30  // streamline seeds per axis at density 1
	stepFraction    = 0.2 // integration step, as a fraction of a mask cell
	maxSteps        = 4000
)

// streamTracer integrates streamlines through a sampled velocity field with
// a midpoint (RK2) scheme. An occupancy mask keeps lines apart: a line stops
// when it enters a mask cell already crossed by any line.
type streamTracer struct {
	field  m.Field
	xs     []float64
	ys     []float64
	dx     float64
	dy     float64
	maskNX int
	maskNY int
	mask   []bool
	step   float64
	vmin   float64
}

func newStreamTracer(field m.Field, density float64) *streamTracer {
	rows, cols := field.Dims()

	xs := make([]float64, cols)
	for j := range cols {
		xs[j] = field.X.At(0, j)
	}

	ys := make([]float64, rows)
	for i := range rows {
		ys[i] = field.Y.At(i, 0)
	}

	if density <= 0 {
		density = 1
	}

	n := max(int(math.Round(seedsPerDensity*density)), 2)

	t := &streamTracer{
		field:  field,
		xs:     xs,
		ys:     ys,
		maskNX: n,
		maskNY: n,
		mask:   make([]bool, n*n),
	}

	if cols > 1 {
		t.dx = (xs[cols-1] - xs[0]) / float64(cols-1)
	}

	if rows > 1 {
		t.dy = (ys[rows-1] - ys[0]) / float64(rows-1)
	}

	t.step = stepFraction * math.Min(field.XLim.Span(), field.YLim.Span()) / float64(n)
	t.vmin = 1e-9 * maxFiniteSpeed(field)

	return t
}

func maxFiniteSpeed(field m.Field) float64 {
	rows, cols := field.Dims()
	top := 0.0

	for i := range rows {
		for j := range cols {
			if s := field.Speed(i, j); !math.IsNaN(s) && !math.IsInf(s, 0) {
				top = math.Max(top, s)
			}
		}
	}

	return top
}

// trace returns every streamline as a polyline, seeding from the centre of
// each free mask cell.
func (t *streamTracer) trace() []plotter.XYs {
	rows, cols := t.field.Dims()
	if rows < 2 || cols < 2 || t.field.U == nil || t.field.V == nil {
		return nil
	}

	var lines []plotter.XYs

	for ci := range t.maskNY {
		for cj := range t.maskNX {
			if t.mask[ci*t.maskNX+cj] {
				continue
			}

			x := t.field.XLim.Min + (float64(cj)+0.5)*t.field.XLim.Span()/float64(t.maskNX)
			y := t.field.YLim.Min + (float64(ci)+0.5)*t.field.YLim.Span()/float64(t.maskNY)

			if line := t.traceFrom(x, y); len(line) > 2 {
				lines = append(lines, line)
			}
		}
	}

	return lines
}

// traceFrom integrates backward and forward from (x, y) and joins the halves.
func (t *streamTracer) traceFrom(x, y float64) plotter.XYs {
	if _, _, ok := t.direction(x, y); !ok {
		return nil
	}

	seed := t.cell(x, y)
	t.mask[seed] = true

	backward := t.integrate(x, y, -1, seed)
	forward := t.integrate(x, y, 1, seed)

	line := make(plotter.XYs, 0, len(backward)+len(forward)+1)
	for i := len(backward) - 1; i >= 0; i-- {
		line = append(line, backward[i])
	}

	line = append(line, plotter.XY{X: x, Y: y})

	return append(line, forward...)
}

func (t *streamTracer) integrate(x, y, sign float64, current int) plotter.XYs {
	var out plotter.XYs

	for range maxSteps {
		ux, uy, ok := t.direction(x, y)
		if !ok {
			break
		}

		mx := x + sign*0.5*t.step*ux
		my := y + sign*0.5*t.step*uy

		vx, vy, ok := t.direction(mx, my)
		if !ok {
			break
		}

		nx := x + sign*t.step*vx
		ny := y + sign*t.step*vy
		if !t.field.XLim.Contains(nx) || !t.field.YLim.Contains(ny) {
			break
		}

		if next := t.cell(nx, ny); next != current {
			if t.mask[next] {
				break
			}

			t.mask[next] = true
			current = next
		}

		x, y = nx, ny
		out = append(out, plotter.XY{X: x, Y: y})
	}

	return out
}

// cell returns the mask index containing (x, y).
func (t *streamTracer) cell(x, y float64) int {
	cj := int(float64(t.maskNX) * (x - t.field.XLim.Min) / t.field.XLim.Span())
	ci := int(float64(t.maskNY) * (y - t.field.YLim.Min) / t.field.YLim.Span())
	cj = min(max(cj, 0), t.maskNX-1)
	ci = min(max(ci, 0), t.maskNY-1)

	return ci*t.maskNX + cj
}

// direction returns the unit velocity at (x, y). It fails outside the grid,
// next to a non-finite sample and at stagnation.
func (t *streamTracer) direction(x, y float64) (float64, float64, bool) {
	u, v, ok := t.velocity(x, y)
	if !ok {
		return 0, 0, false
	}

	speed := math.Hypot(u, v)
	if speed <= t.vmin {
		return 0, 0, false
	}

	return u / speed, v / speed, true
}

// velocity interpolates the sampled velocity bilinearly.
func (t *streamTracer) velocity(x, y float64) (float64, float64, bool) {
	if t.dx == 0 || t.dy == 0 {
		return 0, 0, false
	}

	fj := (x - t.xs[0]) / t.dx
	fi := (y - t.ys[0]) / t.dy

	cols, rows := len(t.xs), len(t.ys)
	if fj < 0 || fi < 0 || fj > float64(cols-1) || fi > float64(rows-1) {
		return 0, 0, false
	}

	j := min(int(fj), cols-2)
	i := min(int(fi), rows-2)
	a, b := fj-float64(j), fi-float64(i)

	bilinear := func(at func(i, j int) float64) float64 {
		return (1-a)*(1-b)*at(i, j) + a*(1-b)*at(i, j+1) + (1-a)*b*at(i+1, j) + a*b*at(i+1, j+1)
	}

	u := bilinear(t.field.U.At)
	v := bilinear(t.field.V.At)

	if math.IsNaN(u) || math.IsNaN(v) || math.IsInf(u, 0) || math.IsInf(v, 0) {
		return 0, 0, false
	}

	return u, v, true
}

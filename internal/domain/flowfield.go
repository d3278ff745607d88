package domain

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"

	"github.com/mouse-blink/potential/internal/domain/singularity"
	m "github.com/mouse-blink/potential/internal/model"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FlowField superposes a uniform freestream and a set of singularities over
// a regular sampling grid. Every derived quantity is recomputed from the
// current fields on each call; nothing is cached.
type FlowField struct {
	Singularities []singularity.Singularity
	Uinf          float64 // freestream speed
	Alpha         float64 // freestream angle, radians
	XLim          m.Range
	YLim          m.Range
	NX            int
	NY            int

	workers int
}

// FieldOption customizes a FlowField at construction time.
type FieldOption func(*FlowField)

// WithFreestream sets the freestream speed and angle of attack in radians.
func WithFreestream(uinf, alpha float64) FieldOption {
	return func(f *FlowField) {
		f.Uinf = uinf
		f.Alpha = alpha
	}
}

// WithXLim sets the sampled x interval.
func WithXLim(lower, upper float64) FieldOption {
	return func(f *FlowField) {
		f.XLim = m.Range{Min: lower, Max: upper}
	}
}

// WithYLim sets the sampled y interval.
func WithYLim(lower, upper float64) FieldOption {
	return func(f *FlowField) {
		f.YLim = m.Range{Min: lower, Max: upper}
	}
}

// WithResolution sets the number of samples along x and y.
func WithResolution(nx, ny int) FieldOption {
	return func(f *FlowField) {
		f.NX = nx
		f.NY = ny
	}
}

// WithWorkers bounds the number of grid rows evaluated concurrently.
// Values below one select runtime.NumCPU.
func WithWorkers(workers int) FieldOption {
	return func(f *FlowField) {
		f.workers = workers
	}
}

// NewFlowField creates a field over the given singularities. The slice is
// copied, so every field owns its collection. Configuration errors are
// reported immediately.
func NewFlowField(singularities []singularity.Singularity, opts ...FieldOption) (*FlowField, error) {
	f := &FlowField{
		Singularities: slices.Clone(singularities),
		XLim:          m.DefaultRange(),
		YLim:          m.DefaultRange(),
		NX:            m.DefaultResolution,
		NY:            m.DefaultResolution,
	}

	if f.Singularities == nil {
		f.Singularities = []singularity.Singularity{}
	}

	for _, opt := range opts {
		opt(f)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// NewFlowFieldFromConfig builds the singularities described by cfg and
// the field that superposes them.
func NewFlowFieldFromConfig(cfg m.FieldConfig, opts ...FieldOption) (*FlowField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	singularities, err := singularity.FromElements(cfg.Elements)
	if err != nil {
		return nil, err
	}

	base := []FieldOption{
		WithFreestream(cfg.Uinf, cfg.Alpha),
		WithXLim(cfg.XLim.Min, cfg.XLim.Max),
		WithYLim(cfg.YLim.Min, cfg.YLim.Max),
		WithResolution(cfg.NX, cfg.NY),
	}

	return NewFlowField(singularities, append(base, opts...)...)
}

// Validate reports whether the current parameters describe a usable grid.
func (f *FlowField) Validate() error {
	return m.ValidateGrid(f.XLim, f.YLim, f.NX, f.NY)
}

// XValues returns the NX evenly spaced x samples, both limits included.
func (f *FlowField) XValues() []float64 {
	return span(f.NX, f.XLim)
}

// YValues returns the NY evenly spaced y samples, both limits included.
func (f *FlowField) YValues() []float64 {
	return span(f.NY, f.YLim)
}

func span(n int, r m.Range) []float64 {
	if n == 1 {
		return []float64{r.Min}
	}

	s := floats.Span(make([]float64, n), r.Min, r.Max)
	s[n-1] = r.Max

	return s
}

// Grid returns the NY x NX coordinate matrices: x varies along columns and
// y along rows.
func (f *FlowField) Grid() (*mat.Dense, *mat.Dense, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}

	xs, ys := f.XValues(), f.YValues()
	x := mat.NewDense(f.NY, f.NX, nil)
	y := mat.NewDense(f.NY, f.NX, nil)

	for i, yi := range ys {
		x.SetRow(i, xs)

		for j := range xs {
			y.Set(i, j, yi)
		}
	}

	return x, y, nil
}

// Freestream returns the constant freestream velocity.
func (f *FlowField) Freestream() (float64, float64) {
	return f.Uinf * math.Cos(f.Alpha), f.Uinf * math.Sin(f.Alpha)
}

// freestreamPsi is the stream function of the uniform flow.
func (f *FlowField) freestreamPsi(x, y float64) float64 {
	return f.Uinf * (y*math.Cos(f.Alpha) - x*math.Sin(f.Alpha))
}

// At evaluates the composite flow at a single point.
func (f *FlowField) At(x, y float64) m.Probe {
	u, v := f.Freestream()
	psi := f.freestreamPsi(x, y)

	for _, s := range f.Singularities {
		su, sv := s.Velocity(x, y)
		u += su
		v += sv
		psi += s.StreamFunction(x, y)
	}

	return m.Probe{X: x, Y: y, U: u, V: v, Psi: psi}
}

// Velocity returns the composite (u, v) over the grid.
func (f *FlowField) Velocity(ctx context.Context) (*mat.Dense, *mat.Dense, error) {
	field, err := f.evaluate(ctx, true, false)
	if err != nil {
		return nil, nil, err
	}

	return field.U, field.V, nil
}

// StreamFunction returns the composite psi over the grid. Its zero level is
// the dividing streamline.
func (f *FlowField) StreamFunction(ctx context.Context) (*mat.Dense, error) {
	field, err := f.evaluate(ctx, false, true)
	if err != nil {
		return nil, err
	}

	return field.Psi, nil
}

// Evaluate computes everything a renderer needs in a single pass over the
// grid.
func (f *FlowField) Evaluate(ctx context.Context) (m.Field, error) {
	return f.evaluate(ctx, true, true)
}

// Markers describes the singularities for a renderer, in collection order.
func (f *FlowField) Markers() []m.Marker {
	markers := make([]m.Marker, 0, len(f.Singularities))
	for _, s := range f.Singularities {
		markers = append(markers, singularity.ToMarker(s))
	}

	return markers
}

// evaluate fills the requested matrices row by row. Rows are independent;
// within a cell the freestream is added first and the singularities follow
// in collection order, so the result does not depend on the worker count.
func (f *FlowField) evaluate(ctx context.Context, velocity, psi bool) (m.Field, error) {
	x, y, err := f.Grid()
	if err != nil {
		return m.Field{}, err
	}

	field := m.Field{
		X:       x,
		Y:       y,
		XLim:    f.XLim,
		YLim:    f.YLim,
		Markers: f.Markers(),
	}

	if velocity {
		field.U = mat.NewDense(f.NY, f.NX, nil)
		field.V = mat.NewDense(f.NY, f.NX, nil)
	}

	if psi {
		field.Psi = mat.NewDense(f.NY, f.NX, nil)
	}

	u0, v0 := f.Freestream()
	xs, ys := f.XValues(), f.YValues()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workerCount())

	for i, yi := range ys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for j, xj := range xs {
				if velocity {
					u, v := u0, v0
					for _, s := range f.Singularities {
						su, sv := s.Velocity(xj, yi)
						u += su
						v += sv
					}

					field.U.Set(i, j, u)
					field.V.Set(i, j, v)
				}

				if psi {
					p := f.freestreamPsi(xj, yi)
					for _, s := range f.Singularities {
						p += s.StreamFunction(xj, yi)
					}

					field.Psi.Set(i, j, p)
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.Field{}, fmt.Errorf("evaluating flow field: %w", err)
	}

	return field, nil
}

func (f *FlowField) workerCount() int {
	if f.workers < 1 {
		return runtime.NumCPU()
	}

	return f.workers
}

// Package singularity implements the elementary solutions of 2D potential
// flow: point sources, point vortices and point doublets.
//
// Every type evaluates its closed-form velocity and stream function in terms
// of the offset (dx, dy) from its own position. At the singular point itself
// the result is NaN or infinite; evaluation never panics.
package singularity

import (
	"fmt"
	"math"

	m "github.com/mouse-blink/potential/internal/model"
	"gonum.org/v1/gonum/mat"
)

// oo2pi is 1/(2π), the common prefactor of every 2D point singularity.
const oo2pi = 0.5 / math.Pi

// Singularity is the shared contract of the three singularity kinds. The set
// of implementations is closed: Source, Vortex and Doublet.
type Singularity interface {
	Kind() m.Kind
	Position() (float64, float64)
	Strength() float64
	Color() string
	// Velocity returns the (u, v) contribution at (x, y).
	Velocity(x, y float64) (float64, float64)
	// StreamFunction returns the psi contribution at (x, y).
	StreamFunction(x, y float64) float64

	sealed()
}

// point holds what every singularity kind has in common.
type point struct {
	x        float64
	y        float64
	strength float64
	color    string
}

func (p point) Position() (float64, float64) { return p.x, p.y }
func (p point) Strength() float64            { return p.strength }
func (p point) Color() string                { return p.color }
func (p point) sealed()                      {}

// offset returns the position of (x, y) relative to the singularity and the
// squared distance between them.
func (p point) offset(x, y float64) (dx, dy, r2 float64) {
	dx = x - p.x
	dy = y - p.y

	return dx, dy, dx*dx + dy*dy
}

// Option customizes a singularity at construction time.
type Option func(*point)

// WithPosition places the singularity at (x, y). The default is the origin.
func WithPosition(x, y float64) Option {
	return func(p *point) {
		p.x = x
		p.y = y
	}
}

// WithStrength sets the signed strength. The default is 1.
func WithStrength(strength float64) Option {
	return func(p *point) {
		p.strength = strength
	}
}

// WithColor overrides the kind's default display color.
func WithColor(color string) Option {
	return func(p *point) {
		if color != "" {
			p.color = color
		}
	}
}

func newPoint(defaultColor string, opts []Option) point {
	p := point{strength: 1, color: defaultColor}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// New builds the singularity described by kind with the given options.
func New(kind m.Kind, opts ...Option) (Singularity, error) {
	switch kind {
	case m.KindSource:
		return NewSource(opts...), nil
	case m.KindVortex:
		return NewVortex(opts...), nil
	case m.KindDoublet:
		return NewDoublet(opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown singularity kind %q", m.ErrInvalidConfig, kind)
	}
}

// FromElement builds the singularity described by a scenario element.
func FromElement(e m.Element) (Singularity, error) {
	return New(e.Kind,
		WithPosition(e.X, e.Y),
		WithStrength(e.Strength),
		WithColor(e.Color),
	)
}

// FromElements builds one singularity per element, preserving order.
func FromElements(elements []m.Element) ([]Singularity, error) {
	out := make([]Singularity, 0, len(elements))

	for i, e := range elements {
		s, err := FromElement(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out = append(out, s)
	}

	return out, nil
}

// ToMarker describes s for a renderer.
func ToMarker(s Singularity) m.Marker {
	x, y := s.Position()

	return m.Marker{Kind: s.Kind(), X: x, Y: y, Color: s.Color()}
}

// VelocityGrid evaluates s elementwise over coordinate matrices of any shape.
// x and y must have the same dimensions; the results match them.
func VelocityGrid(s Singularity, x, y mat.Matrix) (*mat.Dense, *mat.Dense) {
	rows, cols := x.Dims()
	u := mat.NewDense(rows, cols, nil)
	v := mat.NewDense(rows, cols, nil)

	for i := range rows {
		for j := range cols {
			ui, vi := s.Velocity(x.At(i, j), y.At(i, j))
			u.Set(i, j, ui)
			v.Set(i, j, vi)
		}
	}

	return u, v
}

// StreamFunctionGrid evaluates the stream function of s elementwise over
// coordinate matrices of any shape.
func StreamFunctionGrid(s Singularity, x, y mat.Matrix) *mat.Dense {
	rows, cols := x.Dims()
	psi := mat.NewDense(rows, cols, nil)

	psi.Apply(func(i, j int, _ float64) float64 {
		return s.StreamFunction(x.At(i, j), y.At(i, j))
	}, psi)

	return psi
}

package singularity

import (
	m "github.com/mouse-blink/potential/internal/model"
)

// Doublet is a point doublet oriented along the x axis.
type Doublet struct {
	point
}

// NewDoublet creates a point doublet, green by default.
func NewDoublet(opts ...Option) *Doublet {
	return &Doublet{point: newPoint("g", opts)}
}

// Kind implements Singularity.
func (s *Doublet) Kind() m.Kind { return m.KindDoublet }

// Velocity is -μ/(2π) (dx² - dy², 2 dx dy)/r⁴.
func (s *Doublet) Velocity(x, y float64) (float64, float64) {
	dx, dy, r2 := s.offset(x, y)
	k := -s.strength * oo2pi / (r2 * r2)

	return k * (dx*dx - dy*dy), k * 2 * dx * dy
}

// StreamFunction is -μ/(2π) dy/r².
func (s *Doublet) StreamFunction(x, y float64) float64 {
	_, dy, r2 := s.offset(x, y)

	return -s.strength * oo2pi * dy / r2
}

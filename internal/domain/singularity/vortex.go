package singularity

import (
	"math"

	m "github.com/mouse-blink/potential/internal/model"
)

// Vortex is a point vortex. Positive strength rotates the flow
// counter-clockwise.
type Vortex struct {
	point
}

// NewVortex creates a point vortex, cyan by default.
func NewVortex(opts ...Option) *Vortex {
	return &Vortex{point: newPoint("c", opts)}
}

// Kind implements Singularity.
func (s *Vortex) Kind() m.Kind { return m.KindVortex }

// Velocity is tangential: γ/(2π) (dy, -dx)/r².
func (s *Vortex) Velocity(x, y float64) (float64, float64) {
	dx, dy, r2 := s.offset(x, y)
	k := s.strength * oo2pi

	return k * dy / r2, -k * dx / r2
}

// StreamFunction is γ/(4π) ln(r²).
func (s *Vortex) StreamFunction(x, y float64) float64 {
	_, _, r2 := s.offset(x, y)

	return 0.5 * s.strength * oo2pi * math.Log(r2)
}
